// Package main provides uddictl, a command line client for UDDI version 2
// registries.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/uddiwire/uddi"
	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/config"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/models"
	"github.com/uddiwire/uddi/pkg/soap"
	"github.com/uddiwire/uddi/pkg/types"
)

const (
	Version = "0.1.0"
	appName = "uddictl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "UDDI v2 registry client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Config file path (YAML, default from $UDDI_CONFIG)")

	cmd.AddCommand(fmtCmd())
	cmd.AddCommand(getCmd(&configPath))
	cmd.AddCommand(findCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Decode a tModel or tModelDetail document and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return formatDocument(codec.NewEnv(), data, cmd.OutOrStdout())
		},
	}
}

func getCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <tModelKey>...",
		Short: "Fetch tModels by key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*configPath, func(ctx context.Context, c *uddi.Client) error {
				detail, err := c.GetTModelDetail(ctx, args...)
				if err != nil {
					return err
				}
				return writeElement(c.Env(), models.TModelDetailCodec, detail, cmd.OutOrStdout())
			})
		},
	}
}

func findCmd(configPath *string) *cobra.Command {
	var maxRows string

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Search tModels by leading name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*configPath, func(ctx context.Context, c *uddi.Client) error {
				req := models.NewFindTModel(args[0])
				if maxRows != "" {
					req.MaxRows = types.Some(maxRows)
				}
				list, err := c.FindTModel(ctx, req)
				if err != nil {
					return err
				}
				for _, info := range list.Infos() {
					name := ""
					if info.Name != nil {
						name = info.Name.Text.Value()
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.Key.Value(), name)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&maxRows, "max-rows", "", "Limit the number of results")
	return cmd
}

func withClient(configPath string, fn func(ctx context.Context, c *uddi.Client) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	c, err := uddi.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx, c)
}

// formatDocument accepts a bare element or one wrapped in a SOAP envelope.
func formatDocument(env *codec.Env, data []byte, w io.Writer) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	el := doc.Root()
	if el == nil {
		return fmt.Errorf("parse: %w", constants.ErrEmptyBody)
	}
	if el.Tag == "Envelope" && el.NamespaceURI() == constants.SOAPNamespace {
		payload, err := soap.Payload(doc)
		if err != nil {
			return err
		}
		el = payload
	}

	switch el.Tag {
	case models.TModelCodec.Tag():
		t, err := models.TModelCodec.Decode(env, el)
		if err != nil {
			return err
		}
		return writeElement(env, models.TModelCodec, t, w)
	case models.TModelDetailCodec.Tag():
		d, err := models.TModelDetailCodec.Decode(env, el)
		if err != nil {
			return err
		}
		return writeElement(env, models.TModelDetailCodec, d, w)
	default:
		if err := env.Check(el); err != nil {
			return err
		}
		return fmt.Errorf("%w: cannot format %s", constants.ErrUnexpectedResponse, el.FullTag())
	}
}

func writeElement[T any](env *codec.Env, c codec.Codec[T], v *T, w io.Writer) error {
	doc := etree.NewDocument()
	c.Encode(env, v, &doc.Element)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
