package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sitebuilder/internal/config"
	"github.com/sitebuilder/internal/render"
	"github.com/sitebuilder/internal/service"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var pageID, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a stored page to static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			store, err := openStore(config.Load())
			if err != nil {
				return err
			}
			defer store.Close()

			page, err := service.NewPageService(store).Get(ctx, pageID)
			if err != nil {
				return fmt.Errorf("load page %s: %w", pageID, err)
			}
			blocks, err := render.DecodeBlocks(page.Blocks)
			if err != nil {
				return err
			}
			document, err := render.New().Render(blocks)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), document)
				return err
			}
			return os.WriteFile(out, []byte(document), 0o644)
		},
	}

	cmd.Flags().StringVar(&pageID, "page", "", "id of the page to render")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the document to this file instead of stdout")
	if err := cmd.MarkFlagRequired("page"); err != nil {
		panic(err)
	}
	return cmd
}
