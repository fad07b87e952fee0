package script

import (
	"errors"
	"fmt"
	"io"

	"github.com/mgnsk/kvring"
	"github.com/sirupsen/logrus"
)

// Runner applies scripts to a ring.
type Runner struct {
	Ring *kvring.Ring[string, string]
	Out  io.Writer
	// Log receives skipped operations. Defaults to the standard logger.
	Log logrus.FieldLogger
	// Strict aborts the script on the first failed ring operation.
	Strict bool
}

// Run applies the operations of s in order.
//
// Unknown operations always abort the script. Failed ring operations abort it in
// strict mode and are skipped otherwise.
func (r *Runner) Run(s *Script) error {
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	for i, op := range s.Ops {
		err := r.apply(op)
		if err == nil {
			continue
		}

		if r.Strict || errors.Is(err, ErrUnknownOp) {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}

		log.WithError(err).WithFields(logrus.Fields{
			"index": i,
			"op":    op.Op,
		}).Debug("skipping failed operation")
	}

	return nil
}

func (r *Runner) apply(op Op) error {
	occurrence := op.Occurrence
	if occurrence == 0 {
		occurrence = 1
	}

	switch op.Op {
	case OpPush:
		r.Ring.PushBack(op.Key, op.Value)
		return nil

	case OpInsertAfter:
		return r.Ring.InsertAfterNth(op.Key, occurrence, op.NewKey, op.Value)

	case OpInsertBefore:
		return r.Ring.InsertBeforeNth(op.Key, occurrence, op.NewKey, op.Value)

	case OpRemove:
		return r.Ring.RemoveNth(op.Key, occurrence)

	case OpClear:
		r.Ring.Clear()
		return nil

	case OpFind:
		if c := r.Ring.FindNth(op.Key, occurrence); c.Valid() {
			_, err := fmt.Fprintf(r.Out, "%s#%d: %s\n", op.Key, occurrence, c.Value())
			return err
		}
		_, err := fmt.Fprintf(r.Out, "%s#%d: not found\n", op.Key, occurrence)
		return err

	case OpCount:
		_, err := fmt.Fprintf(r.Out, "%s: %d\n", op.Key, r.Ring.Count(op.Key))
		return err

	case OpExists:
		_, err := fmt.Fprintf(r.Out, "%s: %t\n", op.Key, r.Ring.Exists(op.Key))
		return err

	case OpPrint:
		return r.Ring.Fprint(r.Out)

	default:
		return fmt.Errorf("'%s': %w", op.Op, ErrUnknownOp)
	}
}
