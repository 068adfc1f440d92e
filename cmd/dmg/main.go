package main

import (
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/go-dmg/internal/boot"
	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/dmg"
	"github.com/thelolagemann/go-dmg/pkg/log"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootFile := flag.String("boot", "", "The boot rom file to load")
	seconds := flag.Float64("seconds", 1, "How many seconds of emulated time to run")
	flag.Parse()

	l := log.New()

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logrus.Fatalf("dmg: unable to load rom: %v", err)
	}

	var bootROM *boot.ROM
	if *bootFile != "" {
		data, err := utils.LoadFile(*bootFile)
		if err != nil {
			logrus.Fatalf("dmg: unable to load boot rom: %v", err)
		}
		if bootROM, err = boot.LoadBootROM(data); err != nil {
			logrus.Fatalf("dmg: %v", err)
		}
	}

	machine, err := dmg.New(rom, bootROM, dmg.WithLogger(l))
	if err != nil {
		logrus.Fatalf("dmg: %v", err)
	}

	// ClockSpeed is in T-cycles; the clock counts M-cycles
	budget := uint64(*seconds * cpu.ClockSpeed / 4)
	if err := machine.Run(budget); err != nil {
		logrus.Fatalf("dmg: %v", err)
	}

	c := machine.CPU
	l.Infof("AF: %04x BC: %04x DE: %04x HL: %04x", c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16())
	l.Infof("PC: %04x SP: %04x clock: %d", c.PC, c.SP, c.Clock())
	l.Infof("state checksum: %016x", machine.Checksum())
}
