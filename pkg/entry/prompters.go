package entry

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Answer is one scripted reply.
type Answer struct {
	Value string
	OK    bool
}

// Scripted replies from a fixed list. Running out of answers counts as a
// cancel.
type Scripted struct {
	Answers []Answer
	asked   []Step
}

// Values builds a script that accepts every value.
func Values(values ...string) *Scripted {
	s := &Scripted{}
	for _, v := range values {
		s.Answers = append(s.Answers, Answer{Value: v, OK: true})
	}
	return s
}

func (s *Scripted) Prompt(step Step, reply func(string, bool)) {
	s.asked = append(s.asked, step)
	if len(s.Answers) == 0 {
		reply("", false)
		return
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	reply(a.Value, a.OK)
}

// Asked returns the steps prompted so far.
func (s *Scripted) Asked() []Step {
	return s.asked
}

// LinePrompter asks on out and reads one line per step from in. An empty
// line or end of input cancels.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (lp *LinePrompter) Prompt(step Step, reply func(string, bool)) {
	fmt.Fprintf(lp.out, "%s ", step.Label())
	line, err := lp.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		fmt.Fprintln(lp.out)
		reply("", false)
		return
	}
	if err != nil && err != io.EOF {
		reply("", false)
		return
	}
	reply(line, true)
}
