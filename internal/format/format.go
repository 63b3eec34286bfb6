// Package format renders catalog output for the console.
package format

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/varoOP/tvseriesdb/internal/domain"
)

// DateLayout renders release dates day first, e.g. 01.12.2017
const DateLayout = "02.01.2006"

const separator = "------------------------"

// Printer writes user-facing messages to an io.Writer
type Printer struct {
	w          io.Writer
	importFile string
}

// NewPrinter creates a printer; importFile is named in the command menu
func NewPrinter(w io.Writer, importFile string) *Printer {
	return &Printer{w: w, importFile: importFile}
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Welcome() {
	p.println("Welcome to the TV series manager!")
}

func (p *Printer) Menu() {
	p.println("\nAvailable commands:")
	p.printf("A - import series from %s\n", p.importFile)
	p.println("S <title> - search series by title")
	p.println("L - list all series")
	p.println("D <id> - delete series by ID")
	p.println("Q - quit")
}

func (p *Printer) Goodbye() {
	p.println("Goodbye!")
}

func (p *Printer) InvalidCommand() {
	p.println("Invalid command!")
}

func (p *Printer) Usage(usage string) {
	p.println(usage)
}

func (p *Printer) Initialized(created bool) {
	if created {
		p.println("Database and collection created successfully")
		return
	}
	p.println("Database and collection already exist")
}

func (p *Printer) Imported(count int) {
	p.printf("Imported series: %d\n", count)
}

func (p *Printer) ImportFileNotFound(path string) {
	p.printf("Error: file %s not found\n", path)
}

func (p *Printer) InvalidImport(err error) {
	p.printf("Error: import file rejected, %v\n", err)
}

// SearchResults prints full details of every match or a not-found message
func (p *Printer) SearchResults(found []domain.Series) {
	if len(found) == 0 {
		p.println("Series not found")
		return
	}

	p.println("\nFound series:")
	for _, s := range found {
		p.println("\n" + separator)
		p.printf("ID: %s\n", s.ID.Hex())
		p.printf("Title: %s\n", s.Title)
		if s.LastTitle != "" {
			p.printf("Title (eng): %s\n", s.LastTitle)
		}
		p.printf("Genre: %s\n", s.Genre)
		p.printf("Country: %s\n", s.Country)
		p.printf("Age rating: %d+\n", s.AgeLimits)
		p.printf("Rating: %s/10\n", Rating(s.Rating))
		p.printf("Release date: %s\n", Date(s.ReleaseDate))
	}
}

// List prints a summary of every series or an empty-catalog message
func (p *Printer) List(all []domain.Series) {
	if len(all) == 0 {
		p.println("There are no series in the database")
		return
	}

	p.println("\nAll series:")
	for _, s := range all {
		p.println("\n" + separator)
		p.printf("ID: %s\n", s.ID.Hex())
		p.printf("Title: %s\n", s.Title)
		p.printf("Genre: %s\n", s.Genre)
		p.printf("Rating: %s/10\n", Rating(s.Rating))
	}
}

func (p *Printer) Deleted(s domain.Series) {
	p.println("\nDeleted series:")
	p.printf("Title: %s\n", s.Title)
	p.printf("Genre: %s\n", s.Genre)
}

func (p *Printer) NotFound() {
	p.println("Series with the given ID not found")
}

func (p *Printer) InvalidID() {
	p.println("Invalid ID format")
}

func (p *Printer) DeleteFailed() {
	p.println("Error deleting series")
}

// Date renders t in DateLayout
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Rating renders r with the shortest exact representation, 8.7 rather than 8.700000
func Rating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
