package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var moveFlag = &cli.BoolFlag{
	Name:  "move",
	Usage: "Remove the associations from the source service after replicating them",
}

func newMirrorCommand() *cli.Command {
	return &cli.Command{
		Name:      "mirror",
		Usage:     "Replicate one service record's collection associations onto the canonical OPeNDAP record",
		ArgsUsage: "<source-service-id> <provider>",
		Flags:     []cli.Flag{moveFlag},
		Action:    mirrorAction,
	}
}

func mirrorAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments: source service concept ID and provider")
	}
	sourceService := cmd.Args().Get(0)
	provider := cmd.Args().Get(1)

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	client, err := a.searchClient()
	if err != nil {
		return err
	}

	conceptIDs, err := client.AssociatedCollections(ctx, sourceService, provider)
	if err != nil {
		return err
	}
	a.logger.Infof("found %d collections associated with %s for %s", len(conceptIDs), sourceService, provider)

	target := a.envConfig.OpenDAPServiceID
	if err := client.CreateAssociations(ctx, target, conceptIDs); err != nil {
		return err
	}
	a.logger.Infof("associated %d collections with %s", len(conceptIDs), target)

	if cmd.Bool(moveFlag.Name) {
		if err := client.RemoveAssociations(ctx, sourceService, conceptIDs); err != nil {
			return err
		}
		a.logger.Infof("removed %d associations from %s", len(conceptIDs), sourceService)
	}
	return nil
}
