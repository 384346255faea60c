package main

import (
	"fmt"

	"github.com/eei/returns-calculator/internal/calculation"
	"github.com/eei/returns-calculator/internal/config"
	"github.com/eei/returns-calculator/internal/domain"
	"github.com/eei/returns-calculator/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fieldFlag binds a form field id to a string flag.
type fieldFlag struct {
	id    string
	name  string
	usage string
	value string
}

func bindFields(flags *pflag.FlagSet, fields []*fieldFlag) {
	for _, f := range fields {
		flags.StringVar(&f.value, f.name, "", f.usage)
	}
}

// collectFields merges the optional YAML input file with the flags. Flags
// given explicitly win; without a file every flag contributes its value.
func collectFields(flags *pflag.FlagSet, inputFile string, fields []*fieldFlag) (config.FieldMap, error) {
	src := config.FieldMap{}
	if inputFile != "" {
		loaded, err := config.NewInputParser().LoadFieldsFromFile(inputFile)
		if err != nil {
			return nil, err
		}
		src = loaded
	}
	for _, f := range fields {
		if inputFile == "" || flags.Changed(f.name) {
			src[f.id] = f.value
		}
	}
	return src, nil
}

func (c *cli) emit(cmd *cobra.Command, result *domain.CalculationResult) error {
	f, err := output.LookupFormatter(c.format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	if c.saveDir != "" {
		path, err := output.WriteFormatted(f, result, c.saveDir)
		if err != nil {
			return fmt.Errorf("failed to save output: %w", err)
		}
		c.logger.Info("saved illustration " + path)
	}
	if result.IsMessage() {
		return calculation.ErrInvalidInput
	}
	return nil
}

func newFranchiseCmd(c *cli) *cobra.Command {
	var inputFile string
	fields := []*fieldFlag{
		{id: config.FieldVehicleCost, name: "cost", usage: "vehicle cost in rupees"},
		{id: config.FieldLoanRate, name: "loan-rate", usage: "interest paid by EEI, % p.a."},
		{id: config.FieldTopupRate, name: "topup-rate", usage: "top-up on the interest, %"},
		{id: config.FieldTaxRate, name: "tax-rate", usage: "tax benefit, % of cost p.a."},
		{id: config.FieldSalvageRate, name: "salvage-rate", usage: "salvage value at term end, % of cost"},
		{id: config.FieldYears, name: "years", usage: "term in whole years"},
	}

	cmd := &cobra.Command{
		Use:   "franchise",
		Short: "Illustrate franchisee returns on a leased vehicle",
		Example: `  eei-calc franchise --cost 1000000 --loan-rate 10 --topup-rate 5 --tax-rate 2 --salvage-rate 20 --years 5
  eei-calc franchise --input franchise.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := collectFields(cmd.Flags(), inputFile, fields)
			if err != nil {
				return err
			}
			in, ok := config.CollectFranchise(src)
			if !ok {
				return fmt.Errorf("no %s field in %s", config.FieldVehicleCost, inputFile)
			}
			return c.emit(cmd, c.engine.Franchise(in))
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML file of form fields (vehicleCost, loanRate, ...)")
	bindFields(cmd.Flags(), fields)
	return cmd
}

func newInvestorCmd(c *cli) *cobra.Command {
	var inputFile string
	fields := []*fieldFlag{
		{id: config.FieldInvPrincipal, name: "principal", usage: "amount invested in rupees"},
		{id: config.FieldInvHighRate, name: "high-rate", usage: "illustrative EEI rate, % p.a."},
		{id: config.FieldInvSafeRate, name: "safe-rate", usage: "safe deposit rate, % p.a."},
		{id: config.FieldInvYears, name: "years", usage: "term in whole years"},
	}

	cmd := &cobra.Command{
		Use:     "investor",
		Short:   "Compare compounding at a higher rate against a safe deposit",
		Example: `  eei-calc investor --principal 100000 --high-rate 18 --safe-rate 6 --years 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := collectFields(cmd.Flags(), inputFile, fields)
			if err != nil {
				return err
			}
			in, ok := config.CollectInvestor(src)
			if !ok {
				return fmt.Errorf("no %s field in %s", config.FieldInvPrincipal, inputFile)
			}
			return c.emit(cmd, c.engine.Investor(in))
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML file of form fields (invPrincipal, invHighRate, ...)")
	bindFields(cmd.Flags(), fields)
	return cmd
}
