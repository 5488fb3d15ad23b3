package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridref/internal/a1"
	"gridref/internal/diag"
	"gridref/internal/wire"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] <selection>",
	Short: "Serialize a selection into the wire format",
	Long: `Encode packs a selection into its msgpack wire form and writes it to
--out, or stores it under --name in the local selection cache`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [file]",
	Short: "Read a wire-format selection and print its canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	encodeCmd.Flags().String("out", "", "write the packet to this file")
	encodeCmd.Flags().String("name", "", "store the packet in the selection cache under this name")
	decodeCmd.Flags().String("name", "", "read the packet from the selection cache")
}

func runEncode(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	name, _ := cmd.Flags().GetString("name")
	if outPath == "" && name == "" {
		return fmt.Errorf("either --out or --name is required")
	}

	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}
	bag := diag.NewBag(maxDiagnostics(cmd))
	sel, err := a1.ParseSelection(args[0], wb.DefaultSheet, wb.Context)
	if err != nil {
		bag.Add(diag.FromError(err, args[0]))
		return reportBag(cmd, bag)
	}

	if name != "" {
		store, err := wire.OpenStore("gridref")
		if err != nil {
			return err
		}
		if err := store.Put(name, sel); err != nil {
			return fmt.Errorf("failed to store selection: %w", err)
		}
	}
	if outPath != "" {
		data, err := wire.EncodeSelection(sel)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
	}
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "encoded %s\n", sel.A1String(wb.DefaultSheet, wb.Context))
	}
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	if name == "" && len(args) == 0 {
		return fmt.Errorf("either a file argument or --name is required")
	}

	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}

	var sel a1.Selection
	if name != "" {
		store, err := wire.OpenStore("gridref")
		if err != nil {
			return err
		}
		got, ok, err := store.Get(name, wb.Context)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no stored selection named %q", name)
		}
		sel = got
	} else {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		sel, err = wire.DecodeSelection(data, wb.Context)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sel.A1String(wb.DefaultSheet, wb.Context))
	if !isQuiet(cmd) {
		fmt.Fprintf(out, "cursor: %s\n", sel.CursorA1())
	}
	return nil
}
