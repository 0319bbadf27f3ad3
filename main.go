// main is the entry point for the schoolscore CLI.
package main

import (
	"github.com/huangsam/schoolscore/cmd"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/iocache"
)

func main() {
	cmd.SetStoreManager(iocache.Manager)
	err := cmd.Execute()
	iocache.CloseStores()
	if err != nil {
		contract.LogFatal("schoolscore failed", err)
	}
}
