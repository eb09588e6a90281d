package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/elgamal-bn/elgamal"
	"github.com/f3rmion/elgamal-bn/internal/config"
	"github.com/f3rmion/elgamal-bn/internal/logging"
	"github.com/f3rmion/elgamal-bn/vectors"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// env carries resolved settings from the root command to subcommands.
type env struct {
	v      *viper.Viper
	cfg    config.Config
	logger logging.Logger
}

// scheme builds the ElGamal scheme selected by the configuration.
func (e *env) scheme() (*elgamal.Scheme, error) {
	g, err := vectors.GroupByName(e.cfg.Group)
	if err != nil {
		return nil, err
	}
	alg, err := elgamal.ParseHashAlgorithm(e.cfg.Hash)
	if err != nil {
		return nil, err
	}
	h, err := elgamal.NewHasher(alg)
	if err != nil {
		return nil, err
	}
	return elgamal.New(g, h)
}

// NewRootCmd creates the elgamal-bn root command. It is called once in main.
func NewRootCmd() *cobra.Command {
	e := &env{v: config.NewViper()}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "elgamal-bn",
		Short:         "ElGamal over BN254 with Solidity-verifiable decryption proofs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			if err := e.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(e.v, configFile)
			if err != nil {
				return err
			}
			logger, err := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logger.With("command", cmd.Name())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.String(config.KeyGroup, config.Default().Group, "group: bn254 or bjj")
	flags.String(config.KeyHash, config.Default().Hash, "transcript hash: keccak256, sha512 or blake2b")
	flags.String(config.KeyLogLevel, config.Default().LogLevel, "log level: debug, info, warn or error")
	flags.String(config.KeyLogFormat, config.Default().LogFormat, "log format: text or json")

	rootCmd.AddCommand(
		newVectorsCmd(e),
		newVerifyCmd(e),
		newEncryptCmd(e),
		newVersionCmd(),
	)
	return rootCmd
}
