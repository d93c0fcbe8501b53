// Package console runs the front-desk menu: it reads operator choices from a
// line-oriented input, calls the intake service and prints the results.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/erqueue/internal/domain/intake"
)

// Menu choices.
const (
	choiceAdd     = 1
	choiceTreat   = 2
	choiceQueue   = 3
	choiceHistory = 4
	choiceExit    = 5
)

type Console struct {
	svc    *intake.Service
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
	werr   error
}

func New(svc *intake.Service, in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the menu until the operator exits or the input ends. It returns
// an error only if reading input or writing output fails.
func (c *Console) Run() error {
	c.logger.Info().Msg("session started")
	defer c.logger.Info().Msg("session ended")

	for {
		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			return c.finish()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0
		}

		switch choice {
		case choiceAdd:
			if !c.addPatient() {
				return c.finish()
			}
		case choiceTreat:
			c.treatNext()
		case choiceQueue:
			c.showQueue()
		case choiceHistory:
			c.showHistory()
		case choiceExit:
			c.println("Exiting system. Goodbye!")
			return c.finish()
		default:
			c.logger.Debug().Int("input_len", len(line)).Msg("invalid menu option")
			c.println("Invalid option. Try again.")
		}

		if c.werr != nil {
			return c.finish()
		}
	}
}

func (c *Console) printMenu() {
	c.println()
	c.println("=== EMERGENCY ROOM SYSTEM ===")
	c.println("1. Add Patient")
	c.println("2. Treat Next Patient")
	c.println("3. Display Queue")
	c.println("4. View Treated Patients History")
	c.println("5. Exit")
	c.print("Choose an option: ")
}

// addPatient returns false if the input ended before the record was complete.
func (c *Console) addPatient() bool {
	c.print("Enter name: ")
	name, ok := c.readLine()
	if !ok {
		return false
	}

	var priority int
	for {
		c.print("Enter priority (1=highest, 4=lowest): ")
		line, ok := c.readLine()
		if !ok {
			return false
		}
		p, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			priority = p
			break
		}
		c.println("Priority must be a whole number.")
		if c.werr != nil {
			return false
		}
	}

	c.print("Enter condition: ")
	condition, ok := c.readLine()
	if !ok {
		return false
	}

	c.svc.Admit(name, intake.Priority(priority), condition)
	c.println("Patient added successfully (arrival time & ID auto-set).")
	return true
}

func (c *Console) treatNext() {
	p, ok := c.svc.TreatNext()
	if !ok {
		c.println("No patients to treat.")
		return
	}
	c.println(">>> Treating patient now...")
	c.println("Treated: " + p.String())
}

func (c *Console) showQueue() {
	l := c.svc.ListWaiting()
	c.println("=== UPDATED QUEUE ===")
	c.println(fmt.Sprintf("Patients Waiting: %d", l.Count))
	if l.Count == 0 {
		c.println("No patients in queue.")
		return
	}
	c.printEntries(l)
}

func (c *Console) showHistory() {
	l := c.svc.ListHistory()
	c.println("=== TREATED PATIENTS HISTORY ===")
	if l.Count == 0 {
		c.println("No patients have been treated yet.")
		return
	}
	c.printEntries(l)
}

func (c *Console) printEntries(l intake.Listing) {
	for _, e := range l.Entries {
		c.println(fmt.Sprintf("%d. %s", e.Rank, e.Patient))
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *Console) print(s string) {
	if c.werr != nil {
		return
	}
	_, c.werr = io.WriteString(c.out, s)
}

func (c *Console) println(s ...string) {
	c.print(strings.Join(s, "") + "\n")
}

func (c *Console) finish() error {
	if c.werr != nil {
		return fmt.Errorf("write output: %w", c.werr)
	}
	if err := c.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
