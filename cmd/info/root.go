package info

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/spf13/cobra"
)

// InfoCmd prints the index statistics of a shard
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print index statistics of a shard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rpcStore, err := util.NewRPCStore(cmd)
		if err != nil {
			return err
		}
		info, err := rpcStore.GetInfo()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format info: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the info command
	util.SetupRPCClientFlags(InfoCmd)
}
