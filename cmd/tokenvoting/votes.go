package tokenvoting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tokenvoting/internal/utils/safecast"
	"github.com/smartcontractkit/tokenvoting/sdk"
	"github.com/smartcontractkit/tokenvoting/sdk/cache"
	"github.com/smartcontractkit/tokenvoting/sdk/evm"
)

func buildVotesCmd(a *app) *cobra.Command {
	var (
		token    string
		accounts []string
		block    int64
	)

	cmd := &cobra.Command{
		Use:   "votes",
		Short: "Read past voting power from an ERC20Votes token",
		Long: `Read the voting power of accounts and the total supply at a block. Without --block
the snapshot block of a proposal created now is used, i.e. the block before the latest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.RPCURL == "" {
				return errors.New("no rpc url: set --rpc-url or TOKENVOTING_RPC_URL")
			}
			if !common.IsHexAddress(token) {
				return fmt.Errorf("invalid --token: %q", token)
			}

			client, err := ethclient.DialContext(cmd.Context(), a.cfg.RPCURL)
			if err != nil {
				return fmt.Errorf("failed to connect to %s: %w", a.cfg.RPCURL, err)
			}
			defer client.Close()

			oracle := cache.NewOracle(evm.NewVotesOracle(client, common.HexToAddress(token)), 0, 0)

			return readVotes(cmd.Context(), cmd.OutOrStdout(), evm.NewHeaderClock(client), oracle, accounts, block)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Address of the voting token")
	cmd.Flags().StringSliceVar(&accounts, "account", nil, "Accounts to read, repeatable")
	cmd.Flags().Int64Var(&block, "block", -1, "Block to read at")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

type accountVotes struct {
	account common.Address
	votes   *big.Int
}

func readVotes(
	ctx context.Context,
	w io.Writer,
	clock sdk.Clock,
	oracle sdk.WeightOracle,
	accounts []string,
	block int64,
) error {
	var snapshot uint64
	if block < 0 {
		head, err := clock.Head(ctx)
		if err != nil {
			return fmt.Errorf("failed to read the latest block: %w", err)
		}
		if head.Number == 0 {
			return errors.New("no block before the genesis block")
		}
		snapshot = head.Number - 1
	} else {
		var err error
		if snapshot, err = safecast.Int64ToUint64(block); err != nil {
			return err
		}
	}

	supply, err := oracle.PastTotalSupply(ctx, snapshot)
	if err != nil {
		return err
	}

	rows := make([]accountVotes, 0, len(accounts))
	for _, account := range accounts {
		if !common.IsHexAddress(account) {
			return fmt.Errorf("invalid --account: %q", account)
		}
		addr := common.HexToAddress(account)

		votes, err := oracle.PastVotes(ctx, addr, snapshot)
		if err != nil {
			return err
		}
		rows = append(rows, accountVotes{account: addr, votes: votes})
	}

	renderVotes(w, snapshot, supply, rows)

	return nil
}
