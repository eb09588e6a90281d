package cmd

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/internal/config"
	"github.com/f3rmion/elgamal-bn/internal/drbg"
	"github.com/f3rmion/elgamal-bn/vectors"
)

func newVectorsCmd(e *env) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Generate a bundle of encryption and decryption-proof test vectors",
		Long: `Generate a bundle of test vectors. Each vector has a fresh key, an
encrypted small integer, its decryption and a decryption proof.

With --seed the output is deterministic. Seeded keys are derived from
public data and must never be used for anything but testing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			scheme, err := e.scheme()
			if err != nil {
				return err
			}
			enc, err := vectors.ParseEncoding(e.cfg.Encoding)
			if err != nil {
				return err
			}

			rng := func(int) io.Reader { return rand.Reader }
			var seed []byte
			if e.cfg.Seed != "" {
				seed = []byte(e.cfg.Seed)
				src, err := drbg.New(seed)
				if err != nil {
					return err
				}
				rng = func(i int) io.Reader { return src.Indexed("vectors", i) }
				e.logger.Warn(ctx, "using deterministic randomness")
			}

			bundle, err := vectors.Generate(ctx, vectors.Config{
				Group:  scheme.Group(),
				Hasher: scheme.Hasher(),
				Format: elgamal.CoordinateFormat(e.cfg.Format),
				Count:  e.cfg.Count,
				Seed:   seed,
			}, rng)
			if err != nil {
				return err
			}

			data, err := bundle.Marshal(enc)
			if err != nil {
				return err
			}
			e.logger.Info(ctx, "generated vectors",
				"id", bundle.ID,
				"count", len(bundle.Vectors),
				"group", bundle.Group,
				"hash", bundle.Hash,
				"encoding", enc,
			)

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	flags := cmd.Flags()
	flags.Int(config.KeyCount, config.Default().Count, "number of vectors")
	flags.String(config.KeySeed, "", "seed for deterministic output")
	flags.String(config.KeyFormat, config.Default().Format, "coordinate format: hex or decimal")
	flags.String(config.KeyEncoding, config.Default().Encoding, "bundle encoding: json or cbor")
	flags.StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
