package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/busarb/busctrl"
	"github.com/sarchlab/busarb/datarecording"
	"github.com/sarchlab/busarb/sim"
	"github.com/sarchlab/busarb/simulation"
	"github.com/sarchlab/busarb/traffic"
)

var (
	numClients   int
	weightWidth  int
	weights      []uint
	numTransfers int
	maxBeats     int
	maxGap       int
	lockFraction float64
	seed         int64
	outputName   string
	monitorOn    bool
	monitorPort  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a bus-arbitration experiment",
	Long: `Run drives a configurable number of synthetic traffic clients ` +
		`against one weighted round-robin arbitrated bus, records the ` +
		`per-cycle ownership trace into a SQLite file, and prints the ` +
		`bandwidth share each client received.`,
	RunE: runExperiment,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&numClients, "clients", 4,
		"number of clients on the bus")
	runCmd.Flags().IntVar(&weightWidth, "weight-width", 4,
		"bit width of the arbitration weights")
	runCmd.Flags().UintSliceVar(&weights, "weights", nil,
		"per-client weights, one entry per client, all zero when omitted")
	runCmd.Flags().IntVar(&numTransfers, "transfers", 100,
		"number of transfers each client issues")
	runCmd.Flags().IntVar(&maxBeats, "max-beats", 8,
		"longest transfer, in bus cycles")
	runCmd.Flags().IntVar(&maxGap, "max-gap", 4,
		"longest idle gap a client inserts between transfers")
	runCmd.Flags().Float64Var(&lockFraction, "lock-fraction", 0.1,
		"fraction of transfers issued as atomic locked sequences")
	runCmd.Flags().Int64Var(&seed, "seed", 1,
		"seed for the traffic generators")
	runCmd.Flags().StringVar(&outputName, "output", "busarb_trace",
		"output file name, without the .sqlite3 suffix")
	runCmd.Flags().BoolVar(&monitorOn, "monitor", false,
		"start the monitoring server")
	runCmd.Flags().IntVar(&monitorPort, "monitor-port", 0,
		"port of the monitoring server, random when 0")
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	applyEnvDefaults(cmd)

	if weights != nil && len(weights) != numClients {
		return fmt.Errorf("%d weights provided for %d clients",
			len(weights), numClients)
	}

	s, clients, err := buildExperiment()
	if err != nil {
		return err
	}

	err = s.GetEngine().Run()
	if err != nil {
		return err
	}

	s.Terminate()

	return printSummary(clients)
}

func buildExperiment() (*simulation.Simulation, []*traffic.Client, error) {
	builder := simulation.MakeBuilder().WithOutputFileName(outputName)
	if !monitorOn {
		builder = builder.WithoutMonitoring()
	} else if monitorPort > 0 {
		builder = builder.WithMonitorPort(monitorPort)
	}
	s := builder.Build()

	ctrl, err := busctrl.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithNumClients(numClients).
		WithWeightWidth(weightWidth).
		WithWeights(clientWeights()).
		WithDataRecorder(s.GetDataRecorder()).
		Build("BusCtrl")
	if err != nil {
		return nil, nil, err
	}
	s.RegisterComponent(ctrl)

	clients := make([]*traffic.Client, numClients)
	for i := range clients {
		clients[i] = traffic.MakeBuilder().
			WithEngine(s.GetEngine()).
			WithController(ctrl).
			WithClientID(i).
			WithSeed(seed + int64(i)).
			WithNumTransfers(numTransfers).
			WithMaxBeats(maxBeats).
			WithMaxGap(maxGap).
			WithLockFraction(lockFraction).
			Build(sim.BuildNameWithIndex("", "Client", i))
		s.RegisterComponent(clients[i])
		clients[i].TickNow()
	}

	return s, clients, nil
}

func clientWeights() []uint64 {
	if weights == nil {
		return nil
	}

	converted := make([]uint64, len(weights))
	for i, w := range weights {
		converted[i] = uint64(w)
	}

	return converted
}

func printSummary(clients []*traffic.Client) error {
	reader := datarecording.NewReader(outputName + ".sqlite3")
	defer reader.Close()

	reader.MapTable(busctrl.TraceTable, busctrl.TraceEntry{})

	rows, err := reader.Query(
		context.Background(),
		busctrl.TraceTable,
		datarecording.QueryParams{OrderBy: "Cycle ASC"},
	)
	if err != nil {
		return err
	}

	grantCycles := make([]int64, len(clients))
	var busyCycles int64
	for _, row := range rows {
		entry := row.(busctrl.TraceEntry)
		if !entry.Active {
			continue
		}

		busyCycles++
		grantCycles[entry.Owner]++
	}

	fmt.Fprintf(os.Stdout, "Cycles simulated: %d, bus busy: %d\n",
		len(rows), busyCycles)
	for i, c := range clients {
		share := 0.0
		if busyCycles > 0 {
			share = float64(grantCycles[i]) / float64(busyCycles) * 100
		}

		fmt.Fprintf(os.Stdout,
			"%s: owned %d cycles (%.1f%%), served %d beats, "+
				"%d transfers unfinished\n",
			c.Name(), grantCycles[i], share,
			c.BeatsServed(), c.TransfersLeft())
	}

	return nil
}
