package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
	"github.com/earthdata-tools/cmr-opendap/pkg/snapshot"
)

var serviceFlag = &cli.StringFlag{
	Name:  "service",
	Usage: "UMM-S concept ID to associate with (default: the environment's canonical OPeNDAP record)",
}

func newAssociateCommand() *cli.Command {
	return &cli.Command{
		Name:      "associate",
		Usage:     "Associate a provider's OPeNDAP collections with the canonical service record",
		ArgsUsage: "<provider>",
		Flags:     []cli.Flag{serviceFlag},
		Action:    associateAction,
	}
}

func associateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected 1 argument: provider")
	}
	provider := cmd.Args().First()

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	client, err := a.searchClient()
	if err != nil {
		return err
	}

	var records []cmr.CollectionRecord
	if err := a.store.Load(snapshot.FilteredKey(a.environment), &records); err != nil {
		return err
	}

	conceptIDs := make([]string, 0, len(records))
	for _, record := range records {
		conceptIDs = append(conceptIDs, record.ConceptID)
	}
	providerIDs := cmr.FilterByProvider(conceptIDs, provider)
	a.logger.Infof("found %d collections for %s", len(providerIDs), provider)

	serviceID := a.envConfig.OpenDAPServiceID
	if v := cmd.String(serviceFlag.Name); v != "" {
		serviceID = v
	}

	if err := client.CreateAssociations(ctx, serviceID, providerIDs); err != nil {
		return err
	}
	a.logger.Infof("associated %d collections with %s", len(providerIDs), serviceID)
	return nil
}
