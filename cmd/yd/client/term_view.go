package client

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/OnitiFR/yd/common"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// EmptyListMessage is the placeholder of an empty file list
const EmptyListMessage = "저장된 파일 없음"

// TermView renders to a terminal (or any writer)
type TermView struct {
	mutex   sync.Mutex
	out     io.Writer
	errOut  io.Writer
	tty     bool
	spinner *spinner.Spinner

	// Basic shows bare filenames, one per line, without any formating
	Basic bool
	// Timestamps prefixes each file list with the current time
	Timestamps bool
}

// NewTermView creates a view writing to out, notices going to errOut
func NewTermView(out io.Writer, errOut io.Writer) *TermView {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &TermView{
		out:    out,
		errOut: errOut,
		tty:    tty,
	}
}

func (v *TermView) colored(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if !v.tty {
		c.DisableColor()
	}
	return c
}

// ShowStatus implements View
func (v *TermView) ShowStatus(kind StatusKind, message string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	message = common.PrintableText(message)

	switch kind {
	case StatusLoading:
		if v.tty {
			v.stopSpinner()
			s := spinner.New(spinner.CharSets[37], 200*time.Millisecond, spinner.WithWriter(v.out))
			s.Suffix = " " + message
			s.Start()
			v.spinner = s
			return
		}
		fmt.Fprintln(v.out, message)
	case StatusSuccess:
		v.stopSpinner()
		v.colored(color.FgHiGreen).Fprintln(v.out, message)
	default:
		v.stopSpinner()
		v.colored(color.FgHiRed).Fprintln(v.errOut, message)
	}
}

// SetBusy implements View, the spinner is the only busy indicator
func (v *TermView) SetBusy(busy bool) {
	if busy {
		return
	}
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.stopSpinner()
}

// RenderFiles implements View
func (v *TermView) RenderFiles(files common.APIFileListEntries) {
	var buf bytes.Buffer

	if v.Timestamps && !v.Basic {
		fmt.Fprintf(&buf, "[%s]\n", time.Now().Format("2006-01-02 15:04:05"))
	}

	switch {
	case v.Basic:
		for _, file := range files {
			fmt.Fprintln(&buf, common.PrintableText(file.Filename))
		}
	case len(files) == 0:
		fmt.Fprintln(&buf, EmptyListMessage)
	default:
		strData := [][]string{}
		for _, file := range files {
			strData = append(strData, []string{
				common.PrintableText(file.Filename),
				common.FormatRemain(file.Remain),
			})
		}
		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"File", "Remaining"})
		table.SetAutoWrapText(false)
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.AppendBulk(strData)
		table.Render()
	}

	v.mutex.Lock()
	defer v.mutex.Unlock()
	restart := v.spinner != nil && v.spinner.Active()
	if restart {
		v.spinner.Stop()
	}
	v.out.Write(buf.Bytes())
	if restart {
		v.spinner.Start()
	}
}

// Notify implements View
func (v *TermView) Notify(message string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.stopSpinner()
	v.colored(color.FgHiRed).Fprintln(v.errOut, common.PrintableText(message))
}

// MarkFormat implements View
func (v *TermView) MarkFormat(options []FormatOption) {
	if v.Basic {
		return
	}
	parts := make([]string, 0, len(options))
	for _, option := range options {
		if option.Selected {
			parts = append(parts, v.colored(color.Bold).Sprintf("[%s]", option.Format))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", option.Format))
		}
	}
	v.mutex.Lock()
	defer v.mutex.Unlock()
	fmt.Fprintf(v.out, "format: %s\n", strings.Join(parts, " "))
}

func (v *TermView) stopSpinner() {
	if v.spinner == nil {
		return
	}
	v.spinner.Stop()
	v.spinner = nil
}
