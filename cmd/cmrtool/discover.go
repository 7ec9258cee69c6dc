package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/earthdata-tools/cmr-opendap/auth"
	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
	"github.com/earthdata-tools/cmr-opendap/pkg/edl"
	"github.com/earthdata-tools/cmr-opendap/pkg/opendap"
	"github.com/earthdata-tools/cmr-opendap/pkg/snapshot"
)

var fromSnapshotFlag = &cli.BoolFlag{
	Name:  "from-snapshot",
	Usage: "Reuse the raw collection snapshot instead of querying the GraphQL API",
}

func newDiscoverCommand() *cli.Command {
	return &cli.Command{
		Name:   "discover",
		Usage:  "Enumerate cloud-hosted collections and persist those with an OPeNDAP related URL",
		Flags:  []cli.Flag{fromSnapshotFlag},
		Action: discoverAction,
	}
}

func discoverAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var collections []cmr.Collection
	if cmd.Bool(fromSnapshotFlag.Name) {
		if err := a.store.Load(snapshot.RawKey(a.environment), &collections); err != nil {
			return err
		}
	} else {
		collections, err = fetchCollections(ctx, a)
		if err != nil {
			return err
		}
		if err := a.store.Save(snapshot.RawKey(a.environment), collections); err != nil {
			return err
		}
		a.logger.Infof("saved raw snapshot %s", snapshot.RawKey(a.environment))
	}
	a.logger.Infof("retrieved %d cloud-hosted collections", len(collections))

	filtered, err := opendap.Filter(collections, a.envConfig.HyraxSubstring, a.logger)
	if err != nil {
		return err
	}
	a.logger.Infof("%d cloud-hosted collections have an OPeNDAP related URL", len(filtered))

	if err := a.store.Save(snapshot.FilteredKey(a.environment), opendap.Records(filtered)); err != nil {
		return err
	}
	a.logger.Infof("saved filtered snapshot %s", snapshot.FilteredKey(a.environment))
	return nil
}

func fetchCollections(ctx context.Context, a *app) ([]cmr.Collection, error) {
	token, err := edlToken(ctx, a)
	if err != nil {
		return nil, err
	}
	a.logger.Infof("retrieved EDL bearer token")

	httpClient := &http.Client{
		Transport: &auth.BearerTokenTransport{Token: token},
		Timeout:   a.timeout,
	}
	client, err := cmr.NewClient(a.envConfig,
		cmr.WithHTTPClient(httpClient),
		cmr.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	return client.CloudHostedCollections(ctx)
}

func edlToken(ctx context.Context, a *app) (string, error) {
	if a.cfg.EDLToken != "" {
		return a.cfg.EDLToken, nil
	}
	if a.cfg.EDLUsername == "" {
		return "", fmt.Errorf("set EDL_TOKEN, or EDL_USERNAME and EDL_PASSWORD for token bootstrap")
	}

	httpClient := &http.Client{
		Transport: &auth.BasicAuthTransport{
			Username: a.cfg.EDLUsername,
			Password: a.cfg.EDLPassword,
		},
		Timeout: a.timeout,
	}
	client, err := edl.NewClient(a.envConfig.EDLRoot,
		edl.WithHTTPClient(httpClient),
		edl.WithLogger(a.logger),
	)
	if err != nil {
		return "", err
	}
	return client.FetchToken(ctx)
}
