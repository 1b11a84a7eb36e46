// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/session"
)

const shellHelp = `commands:
  load 1|2 PATH        load a matrix file into a slot
  show 1|2|result      print a slot or the last result
  add | sub | mul      combine slot 1 with slot 2
  det 1|2              determinant of a slot
  save 1|2|result PATH write a slot or the last result
  reset                empty both slots
  help                 this text
  quit                 leave the shell
`

// shell reads one command per line and reports failures inline; a failed
// command never ends the session.
type shell struct {
	ws  *session.Workspace
	in  io.Reader
	out io.Writer
}

func newShell(ws *session.Workspace, in io.Reader, out io.Writer) *shell {
	return &shell{ws: ws, in: in, out: out}
}

func (s *shell) run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := s.exec(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	return sc.Err()
}

func (s *shell) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		_, err := io.WriteString(s.out, shellHelp)
		return err
	case "reset":
		s.ws.Reset(ctx)
		return nil
	case "load":
		if len(args) != 2 {
			return errors.New("usage: load 1|2 PATH")
		}
		slot, err := session.ParseSlot(args[0])
		if err != nil {
			return err
		}
		m, err := s.ws.Load(ctx, slot, args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(s.out, "%s: %s loaded\n", slot, m.Shape())
		return err
	case "show":
		if len(args) != 1 {
			return errors.New("usage: show 1|2|result")
		}
		m, err := s.target(args[0])
		if err != nil {
			return err
		}
		_, err = io.WriteString(s.out, codec.Display(m))
		return err
	case "det":
		if len(args) != 1 {
			return errors.New("usage: det 1|2")
		}
		slot, err := session.ParseSlot(args[0])
		if err != nil {
			return err
		}
		det, err := s.ws.Determinant(ctx, slot)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(s.out, "determinant: %d\n", det)
		return err
	case "save":
		if len(args) != 2 {
			return errors.New("usage: save 1|2|result PATH")
		}
		if args[0] == "result" {
			return s.ws.SaveResult(ctx, args[1])
		}
		slot, err := session.ParseSlot(args[0])
		if err != nil {
			return err
		}
		return s.ws.Save(ctx, slot, args[1])
	}

	op, err := matrix.ParseOp(cmd)
	if err != nil {
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	res, err := s.ws.Apply(ctx, op)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, codec.Display(res))

	return err
}

// target resolves "1", "2" or "result".
func (s *shell) target(name string) (*matrix.Matrix, error) {
	if name == "result" {
		return s.ws.Result()
	}
	slot, err := session.ParseSlot(name)
	if err != nil {
		return nil, err
	}

	return s.ws.Matrix(slot)
}
