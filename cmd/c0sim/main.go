package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/device"
	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/host"
	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/soc"
)

func main() {
	cfg, err := parseCommandLine()
	if err != nil {
		fmt.Println("Error in config:", err)
		os.Exit(1)
	}

	log := zap.NewNop()
	if cfg.Verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Println("Logger error:", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	regs := soc.NewRegisterFile()

	d, err := device.New(regs.Device(), device.WithLogger(log))
	if err != nil {
		fmt.Println("Device error:", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = d.Run(ctx)
	}()

	client, err := host.New(regs.Host(), host.WithLogger(log), host.WithTimeout(cfg.Timeout))
	if err != nil {
		fmt.Println("Host error:", err)
		os.Exit(1)
	}

	result, err := client.CalculateWindow(cfg.Samples)
	if err != nil {
		fmt.Println("Command error:", err)
		os.Exit(1)
	}

	fmt.Printf("weighted mean of %d samples: %g\n", len(cfg.Samples), result)
}
