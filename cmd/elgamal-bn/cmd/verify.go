package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/elgamal-bn/vectors"
)

func newVerifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Verify every vector in a JSON or CBOR bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bundle, err := vectors.Unmarshal(data, "")
			if err != nil {
				return err
			}

			results, err := bundle.VerifyEach()
			if err != nil {
				return err
			}

			failed := 0
			for i, res := range results {
				status := "ok"
				if res != nil {
					failed++
					status = "FAIL: " + res.Error()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "vector %d: %s\n", i, status)
			}
			e.logger.Info(ctx, "verified bundle", "id", bundle.ID, "vectors", len(results), "failed", failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d vectors failed", failed, len(results))
			}
			return nil
		},
	}
}
