// Package console implements the interactive control panel: one method
// per menu operation, prompting on an injected reader and rendering
// fixed-width tables on an injected writer.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tiendadam/storepanel/internal/app"
	"github.com/tiendadam/storepanel/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Panel drives the control panel. It holds the application context for
// database access plus the console streams; operations run one at a
// time on the caller's goroutine.
type Panel struct {
	app app.AppContext
	in  *bufio.Scanner
	out io.Writer
}

func NewPanel(application app.AppContext, in io.Reader, out io.Writer) *Panel {
	return &Panel{
		app: application,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Panel) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Panel) println(line string) {
	fmt.Fprintln(p.out, line)
}

// database obtains the shared connection. On failure it prints a
// diagnostic and aborts the current operation; the panel keeps running.
func (p *Panel) database() (*gorm.DB, bool) {
	db, err := p.app.DB()
	if err != nil {
		p.printf("  [!] Database connection error: %v\n", err)
		p.println("      Check that the database server is running.")
		return nil, false
	}
	return db, true
}

// readLine reads one trimmed line; ok is false at end of input.
func (p *Panel) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *Panel) prompt(label string) (string, bool) {
	p.printf("  %s", label)
	return p.readLine()
}

// promptRequired re-prompts until a non-empty value arrives.
func (p *Panel) promptRequired(label, complaint string) (string, bool) {
	for {
		value, ok := p.prompt(label)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		p.printf("  [!] %s\n", complaint)
	}
}

// promptPrice re-prompts until a positive decimal parses.
func (p *Panel) promptPrice(label string) (domain.Money, bool) {
	for {
		value, ok := p.prompt(label)
		if !ok {
			return domain.Money{}, false
		}
		m, err := domain.ParseMoney(value)
		if err != nil {
			p.println("  [!] Enter a valid number (e.g. 19.99).")
			continue
		}
		if !m.IsPositive() {
			p.println("  [!] The price must be greater than 0.")
			continue
		}
		return m, true
	}
}

// promptEmail re-prompts until the value contains an "@" separator.
func (p *Panel) promptEmail(label string) (string, bool) {
	for {
		value, ok := p.prompt(label)
		if !ok {
			return "", false
		}
		if strings.Contains(value, "@") {
			return value, true
		}
		p.println("  [!] The email must contain '@'.")
	}
}

// promptID reads a numeric identifier. Malformed input aborts the
// operation with a message instead of re-prompting.
func (p *Panel) promptID(label string) (int64, bool) {
	value, ok := p.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		p.printf("  [!] '%s' is not a valid number.\n", value)
		return 0, false
	}
	return id, true
}

// confirm is the gate in front of irreversible mutations. Only "s" or
// "si" (case-insensitive) counts as an affirmative answer.
func (p *Panel) confirm(label string) bool {
	value, ok := p.prompt(label)
	if !ok {
		return false
	}
	value = strings.ToLower(value)
	return value == "s" || value == "si"
}

// reportDBError surfaces a query error to the user and the log; the
// operation aborts but the panel keeps running.
func (p *Panel) reportDBError(action string, err error) {
	zap.S().Errorf("%s: %v", action, err)
	p.printf("  [!] SQL error: %v\n", err)
}
