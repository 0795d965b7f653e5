package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sitebuilder/internal/config"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/service"
	"github.com/spf13/cobra"
)

// 演示项目的区块数据
const (
	demoMenu = `{"templateId":"menu-1","config":{"brandName":"Atelier Demo","menuItems":"Acasă Despre Contact"}}`

	demoHomeBlocks = `[
		{"id":"menu","templateId":"menu-1","config":{"brandName":"Atelier Demo","menuItems":"Acasă Despre Contact"}},
		{"id":"hero","templateId":"hero-1","config":{
			"heroImage":{"src":"/api/uploads/demo-hero.jpg"},
			"title":{"text":"Bine ați venit"},
			"description":{"text":"Un site construit din blocuri."},
			"button":{"text":"Află mai mult"}
		}},
		{"id":"intro","templateId":"default","config":{"content":"## Despre noi\n\nConstruim site-uri **rapide** și simple."}}
	]`

	demoAboutBlocks = `[
		{"id":"about","templateId":"default","config":{"content":"Echipa noastră lucrează din 2015."}}
	]`
)

func newSeedCommand() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo project with pages, a shared menu and settings",
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

			if err := seedDemoProject(ctx, store, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo project %q ready\n", projectID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "demo", "id of the demo project")
	return cmd
}

// seedDemoProject 可重复执行：项目与设置会被覆盖，已有页面时跳过页面创建。
func seedDemoProject(ctx context.Context, store *db.Store, projectID string) error {
	projects := service.NewProjectService(store)
	pages := service.NewPageService(store)
	settings := service.NewSettingsService(store)

	if _, err := projects.Save(ctx, service.ProjectInput{
		ID:     projectID,
		Name:   "Atelier Demo",
		Blocks: json.RawMessage(demoHomeBlocks),
	}); err != nil {
		return err
	}
	if err := projects.UpdateSharedMenu(ctx, projectID, json.RawMessage(demoMenu)); err != nil {
		return err
	}

	existing, err := pages.List(ctx, projectID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		if _, err := pages.Create(ctx, service.PageInput{ProjectID: projectID, Name: "Acasă", Blocks: json.RawMessage(demoHomeBlocks), IsHome: true}); err != nil {
			return err
		}
		if _, err := pages.Create(ctx, service.PageInput{ProjectID: projectID, Name: "Despre", Blocks: json.RawMessage(demoAboutBlocks)}); err != nil {
			return err
		}
	}

	siteName := "Atelier Demo"
	metaTitle := "Atelier Demo | Acasă"
	_, err = settings.Save(ctx, projectID, service.SettingsInput{SiteName: &siteName, MetaTitle: &metaTitle})
	return err
}
