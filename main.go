package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"motorcalc.klederson.com/internal/app"
	"motorcalc.klederson.com/internal/config"
	"motorcalc.klederson.com/internal/motor"
	"motorcalc.klederson.com/internal/terminal"
	"motorcalc.klederson.com/internal/ui"
)

var (
	flagKV         float64
	flagVoltage    float64
	flagCells      float64
	flagNoLoad     float64
	flagMaxCurrent float64
	flagResistance float64
	flagCapacity   float64
	flagAnalytic   bool
	flagPoints     int
)

// motorFlags are the nameplate flags; supplying any of them selects
// non-interactive mode.
var motorFlags = []string{"kv", "voltage", "cells", "no-load", "max-current", "resistance"}

func main() {
	rootCmd := &cobra.Command{
		Use:   "motorcalc",
		Short: "MotorCalc - brushed DC motor peak power and efficiency finder",
		Long: `MotorCalc evaluates a brushed DC motor's steady-state behavior from five
nameplate parameters and locates the operating currents that maximize output
power and efficiency.

Run with no flags for the interactive wizard. Supplying the nameplate flags
runs a single analysis and prints the report without the TUI.`,
		RunE: run,
	}

	rootCmd.Flags().Float64Var(&flagKV, "kv", 0, "Speed constant in RPM per volt")
	rootCmd.Flags().Float64Var(&flagVoltage, "voltage", 0, "Supply voltage in V")
	rootCmd.Flags().Float64Var(&flagCells, "cells", 0, "LiPo cell count, alternative to --voltage (3.7 V per cell)")
	rootCmd.Flags().Float64Var(&flagNoLoad, "no-load", 0, "Unloaded current in A")
	rootCmd.Flags().Float64Var(&flagMaxCurrent, "max-current", 0, "Maximum current in A")
	rootCmd.Flags().Float64Var(&flagResistance, "resistance", 0, "Armature resistance in milliohms")
	rootCmd.Flags().Float64Var(&flagCapacity, "capacity", 0, "Battery capacity in mAh, for runtime estimates")
	rootCmd.Flags().BoolVar(&flagAnalytic, "analytic", false, "Use the closed-form search instead of the grid search")
	rootCmd.Flags().IntVar(&flagPoints, "points", config.DefaultCurvePoints, "Rows in the stepped-current table")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	peak, strategy := searchStrategy()

	if flagModeRequested(cmd) {
		return runOnce(cmd, peak)
	}

	if !terminal.IsInteractive() {
		// Started outside a terminal, e.g. from a desktop launcher.
		if terminal.Relaunched() {
			return errors.New("standard input/output is not a terminal")
		}
		return terminal.Relaunch()
	}

	p := tea.NewProgram(
		app.New(peak, strategy, flagPoints),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func searchStrategy() (motor.PeakFunc, string) {
	if flagAnalytic {
		return motor.ClosedForm, "closed form"
	}
	return motor.FindPeak, "grid search"
}

func flagModeRequested(cmd *cobra.Command) bool {
	for _, name := range motorFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// runOnce runs a single analysis from flags and prints the styled report to
// stdout.
func runOnce(cmd *cobra.Command, peak motor.PeakFunc) error {
	for _, name := range []string{"kv", "no-load", "max-current", "resistance"} {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("flag --%s is required in non-interactive mode", name)
		}
	}

	voltage := flagVoltage
	if !cmd.Flags().Changed("voltage") {
		if !cmd.Flags().Changed("cells") {
			return errors.New("either --voltage or --cells is required")
		}
		voltage = flagCells * config.VoltsPerCell
	}

	params := motor.Parameters{
		KV:                 flagKV,
		Voltage:            voltage,
		NoLoadCurrent:      flagNoLoad,
		MaxCurrent:         flagMaxCurrent,
		ArmatureResistance: flagResistance,
	}

	if err := motor.ValidateNameplate(params); err != nil {
		return err
	}

	rep, warn, err := motor.Analyze(params, peak)
	if err != nil {
		return err
	}

	const width = 80

	if warn != nil {
		fmt.Println(ui.RenderWarningBanner(
			fmt.Sprintf("At maximum current, the motor would be an open circuit (Vdrop > Vin). "+
				"Maximum current has been reduced to %.2f A.", warn.NewMaxCurrent),
			width))
	}

	fmt.Println(ui.RenderReport(rep, flagCapacity, width))
	fmt.Println(ui.RenderCurveTable(motor.Curve(rep.Params, flagPoints), width))

	return nil
}
