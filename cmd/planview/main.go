package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planview/internal/bootstrap"
	"planview/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir string

	root := &cobra.Command{
		Use:           "planview",
		Short:         "Weekly class schedule viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.planview)")

	root.AddCommand(newTUICmd(&stateDir))
	root.AddCommand(newLoginCmd(&stateDir))
	root.AddCommand(newLogoutCmd(&stateDir))
	root.AddCommand(newWhoamiCmd(&stateDir))
	root.AddCommand(newWeekCmd(&stateDir))
	root.AddCommand(newWeeksCmd(&stateDir))
	root.AddCommand(newProfessorsCmd(&stateDir))
	return root
}

func loadApp(stateDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive calendar",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(stateDir *string) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <address> --password <password>",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				// Allow piping the password instead of putting it in argv.
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s %s <%s>\n", out.FirstName, out.LastName, out.Email)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newLogoutCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.AuthCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", out.FirstName, out.LastName, out.Email)
			return nil
		},
	}
}

func newWeekCmd(stateDir *string) *cobra.Command {
	var date string
	var offset int
	week := &cobra.Command{
		Use:   "week",
		Short: "Print one week's schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pivot := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
				}
				pivot = parsed
			}
			pivot = pivot.AddDate(0, 0, 7*offset)

			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			grid, err := app.ScheduleCLI.BuildWeek(context.Background(), pivot)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "week %d (%s), hours %02d:00–%02d:00\n",
				grid.WeekNumber, grid.WeekKey, grid.MinHour, grid.MaxHour)
			for _, day := range grid.Days {
				if len(day.Events) == 0 {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", day.Date.Format("Monday Jan 2"))
				for _, e := range day.Events {
					line := fmt.Sprintf("  %s–%s  %s [%s]", e.Start.Format("15:04"), e.End.Format("15:04"), e.Name, e.Attendance)
					if e.Classroom != "" {
						line += "  " + e.Classroom
					}
					if e.Professor != "" {
						line += "  " + e.Professor
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
	week.Flags().StringVar(&date, "date", "", "any date inside the week (YYYY-MM-DD, default today)")
	week.Flags().IntVar(&offset, "offset", 0, "week offset relative to the chosen date")
	return week
}

func newWeeksCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List the academic year's weeks with courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			weeks, err := app.ScheduleCLI.WeeksOverview(context.Background(), time.Now())
			if err != nil {
				return err
			}
			for _, w := range weeks {
				markers := ""
				if w.HasCourses {
					markers += " *"
				}
				if w.Current {
					markers += " <- current"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "S%02d  %s%s\n", w.Number, w.Key, markers)
			}
			return nil
		},
	}
}

func newProfessorsCmd(stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "professors",
		Short: "List professors teaching the cached courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*stateDir)
			if err != nil {
				return err
			}
			defer app.Close()

			// Seed the course cache with the current week before resolving.
			if _, err := app.PlanningCLI.CoursesForWeek(context.Background(), time.Now()); err != nil {
				return err
			}
			professors, err := app.PlanningCLI.Professors(context.Background())
			if err != nil {
				return err
			}
			if len(professors) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no professors this week")
				return nil
			}
			names := make([]string, 0, len(professors))
			for _, p := range professors {
				names = append(names, fmt.Sprintf("%s\t%s", p.ID, p.FullName))
			}
			sort.Strings(names)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
}
