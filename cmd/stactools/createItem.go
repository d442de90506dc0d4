package main

import (
	"encoding/json"
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/JamesTownend/stactools/sentinel2"
	"github.com/JamesTownend/stactools/util"
)

func createItemAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	safeHref := c.Args().First()
	if safeHref == "" {
		return cli.NewExitError("create-item requires a SAFE archive href argument", 1)
	}

	resolver := sentinel2.SASTokenResolver(util.GetSentinelSASToken())

	item, err := sentinel2.CreateItem(logContext, safeHref, nil, resolver)
	if err != nil {
		util.LogSimpleErr(logContext, fmt.Sprintf("Failed to create item for %s.", safeHref), err)
		return cli.NewExitError(err.Error(), 1)
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	data = append(data, '\n')

	if outputPath := c.String("output"); outputPath != "" {
		if err = os.WriteFile(outputPath, data, 0644); err != nil {
			util.LogSimpleErr(logContext, fmt.Sprintf("Failed to write item to %s.", outputPath), err)
			return cli.NewExitError(err.Error(), 1)
		}
		util.LogInfo(logContext, fmt.Sprintf("Wrote item %s to %s", item.ID, outputPath))
		return nil
	}

	fmt.Print(string(data))
	return nil
}
