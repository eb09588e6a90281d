package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/elgamal-bn/elgamal"
)

func newEncryptCmd(e *env) *cobra.Command {
	var (
		pkX, pkY string
		value    uint64
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt value*G under a hex public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scheme, err := e.scheme()
			if err != nil {
				return err
			}
			pk, err := scheme.PublicKeyFromHex(pkX, pkY)
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}

			ct, err := pk.Encrypt(rand.Reader, elgamal.EncodeUint64(scheme.Group(), value))
			if err != nil {
				return err
			}
			data, err := ct.MarshalBinary()
			if err != nil {
				return err
			}

			ex, ey, err := elgamal.PointToHex(ct.Ephemeral())
			if err != nil {
				return err
			}
			mx, my, err := elgamal.PointToHex(ct.Masked())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ephemeral.x %s\nephemeral.y %s\n", ex, ey)
			fmt.Fprintf(w, "masked.x    %s\nmasked.y    %s\n", mx, my)
			fmt.Fprintf(w, "binary      %s\n", elgamal.CoordinateToHex(data))
			fmt.Fprintf(w, "compressed  %s\n", elgamal.CoordinateToHex(ct.MarshalCompressed()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pkX, "pk-x", "", "public key x coordinate (0x-prefixed hex)")
	flags.StringVar(&pkY, "pk-y", "", "public key y coordinate (0x-prefixed hex)")
	flags.Uint64Var(&value, "value", 0, "integer to encrypt")
	_ = cmd.MarkFlagRequired("pk-x")
	_ = cmd.MarkFlagRequired("pk-y")
	return cmd
}
