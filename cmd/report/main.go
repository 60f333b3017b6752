package main

import (
	"fmt"
	"os"
	"time"

	"officer-mobility/config"
	"officer-mobility/internal/mobility"
	"officer-mobility/internal/repository"
	"officer-mobility/internal/report"
	"officer-mobility/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var (
		fromYear int
		toYear   int
		grade    string
		mail     bool
	)

	cmd := &cobra.Command{
		Use:   "mobility-report",
		Short: "Compute the fleet-wide officer mobility summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromYear != 0 && toYear != 0 && fromYear > toYear {
				return fmt.Errorf("--from %d is after --to %d", fromYear, toYear)
			}
			if grade != "" {
				g, err := mobility.ParseGrade(grade)
				if err != nil {
					return fmt.Errorf("--grade: %w", err)
				}
				grade = string(g)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := config.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.ConnectDB(cfg.Database, log)
			if err != nil {
				return err
			}

			uc := usecase.NewMobilityUsecase(
				repository.NewOfficerRepository(db),
				repository.NewAssignmentRepository(db),
				cfg.Fleet.Workers, nil, log,
			)
			result, err := uc.FleetSummary(usecase.FleetFilter{Grade: grade, FromYear: fromYear, ToYear: toYear})
			if err != nil {
				return err
			}

			title := "Officer mobility report " + time.Now().Format("2006-01-02")
			if err := report.Render(cmd.OutOrStdout(), title, result); err != nil {
				return err
			}

			if !mail {
				return nil
			}
			if !cfg.SMTP.Enabled() {
				return fmt.Errorf("--mail needs SMTP_HOST and REPORT_TO")
			}
			if err := report.NewMailer(cfg.SMTP).Send(title, result); err != nil {
				return err
			}
			log.Info("report mailed", zap.Strings("to", cfg.SMTP.To))
			return nil
		},
	}

	cmd.Flags().IntVar(&fromYear, "from", 0, "first destination year to include")
	cmd.Flags().IntVar(&toYear, "to", 0, "last destination year to include")
	cmd.Flags().StringVar(&grade, "grade", "", "only officers currently at this grade (SP, GI, GII, GIII)")
	cmd.Flags().BoolVar(&mail, "mail", false, "also mail the report to REPORT_TO")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
