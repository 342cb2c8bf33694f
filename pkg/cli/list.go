package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/service/metrics"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List analyses in the store",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc, err := usecase.New(ctx, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize use cases")
			}

			analyses := uc.ListAnalyses()
			if len(analyses) == 0 {
				fmt.Println("no analyses in store")
				return nil
			}

			selected := ""
			if current, err := uc.CurrentAnalysis(); err == nil {
				selected = string(current.ID)
			}

			title := color.New(color.Bold)
			dim := color.New(color.Faint)
			marker := color.New(color.FgGreen)

			for _, a := range analyses {
				prefix := " "
				if string(a.ID) == selected {
					prefix = marker.Sprint("*")
				}

				counts := a.Data
				compliance := metrics.GapComplianceCounts(counts.Requirements)
				fmt.Printf("%s %s %s\n", prefix, title.Sprint(a.Title), dim.Sprintf("(%s)", a.ID))
				fmt.Printf("    missions:%d events:%d gap:%d (applied %d/%d) srov:%d risks:%d\n",
					len(counts.Missions), len(counts.Events),
					len(counts.Requirements), compliance.Applied, compliance.Total(),
					len(counts.Couples), len(counts.Risks))
			}
			return nil
		},
	}
}
