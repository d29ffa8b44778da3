// Command walletcore-cli is a small offline demonstration front end for
// the wallet core: generating mnemonics, deriving BIP32/BIP44 keys, and
// printing chain-specific addresses. It never touches the network.
package main

import (
	"fmt"
	"os"

	"github.com/coldkey/walletcore"
	"github.com/coldkey/walletcore/addressutil"
	"github.com/coldkey/walletcore/bip32"
	cointype "github.com/coldkey/walletcore/coin-type"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "walletcore-cli",
		Short: "Offline BIP32/BIP39/BIP44 wallet key derivation",
	}
	root.AddCommand(newMnemonicCmd())
	root.AddCommand(newDeriveCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newMnemonicCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a new BIP39 mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := walletcore.GenerateMnemonic(bits)
			if err != nil {
				return fmt.Errorf("generating mnemonic: %w", err)
			}

			log.WithField("entropy_bits", bits).Info("generated mnemonic")
			fmt.Println(phrase)
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 128, "entropy strength: 128/160/192/224/256")
	return cmd
}

func newDeriveCmd() *cobra.Command {
	var (
		passphrase string
		testnet    bool
		coin       uint32
		account    uint32
		chain      uint32
		address    uint32
	)

	cmd := &cobra.Command{
		Use:   "derive [mnemonic words...]",
		Short: "Derive a BIP44 extended key from a mnemonic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawMnemonic := joinWords(args)

			network := bip32.MainNet
			if testnet {
				network = bip32.TestNet
			}

			key, err := walletcore.DeriveFromMnemonic(rawMnemonic, passphrase, network, coin, account, chain, address)
			if err != nil {
				return fmt.Errorf("deriving key: %w", err)
			}
			defer key.Zero()

			log.WithFields(logrus.Fields{
				"coin":    coin,
				"account": account,
				"chain":   chain,
				"address": address,
				"testnet": testnet,
			}).Info("derived extended key")

			fmt.Printf("Extended private key: %s\n", key.String())

			pub, err := key.Neuter()
			if err != nil {
				return fmt.Errorf("neutering key: %w", err)
			}
			fmt.Printf("Extended public key:  %s\n", pub.String())

			if coin == cointype.Tron {
				point, err := key.PublicPoint()
				if err != nil {
					return fmt.Errorf("computing public point: %w", err)
				}
				fmt.Printf("TRON address:         %s\n", addressutil.TronAddress(point))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "optional BIP39 passphrase (case-sensitive)")
	cmd.Flags().BoolVar(&testnet, "testnet", false, "derive testnet-versioned keys (tprv/tpub)")
	cmd.Flags().Uint32Var(&coin, "coin", cointype.Bitcoin, "SLIP-44 coin type")
	cmd.Flags().Uint32Var(&account, "account", 0, "account index")
	cmd.Flags().Uint32Var(&chain, "chain", 0, "0 = external (receive), 1 = internal (change)")
	cmd.Flags().Uint32Var(&address, "address", 0, "address index")

	return cmd
}

func joinWords(words []string) string {
	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out
}
