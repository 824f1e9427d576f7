package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unionlaw/lawfirm/internal/app"
	"github.com/unionlaw/lawfirm/internal/config"
	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/service"
)

func SeedVideosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-videos <file.json>",
		Short: "Load educational videos from a JSON array into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedVideos(cmd, args[0])
		},
	}
}

func readVideos(path string) ([]*model.Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var videos []*model.Video
	err = json.Unmarshal(data, &videos)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for i, v := range videos {
		if v == nil {
			return nil, fmt.Errorf("%s: video %d is null", path, i)
		}
	}
	return videos, nil
}

func runSeedVideos(cmd *cobra.Command, path string) error {
	videos, err := readVideos(path)
	if err != nil {
		return err
	}

	cfg := config.Load()
	repos, err := app.OpenRepositories(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	catalog := service.NewVideoService(repos.Videos)
	for i, v := range videos {
		// Views always start at zero, whatever the file says.
		v.Views = 0
		err := catalog.Create(cmd.Context(), v)
		if err != nil {
			return fmt.Errorf("video %d (%q): %w", i, v.Title, err)
		}
		cmd.Printf("added %s %q\n", v.ID, v.Title)
	}

	cmd.Printf("seeded %d videos\n", len(videos))
	return nil
}
