// Command vectordemo exercises every constructor and mutator of the
// vector container and checks the container's contract along the way.
// It exits with status 1 when any scenario fails.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-collections/pkg/datastructs/vector"
	"github.com/huynhanx03/go-collections/pkg/logger"
	"github.com/huynhanx03/go-collections/pkg/pool/vecpool"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:          "vectordemo",
		Short:        "Demonstration driver for the vector container",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings.Default()
			if configFile != "" {
				loaded, err := settings.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			log, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cfg, log)
		},
	}
	root.Flags().StringVarP(&configFile, "config", "c", "", "path to YAML config file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes every scenario on its own vector instances; instances are
// never shared, so the scenarios are free to run concurrently.
func run(cfg *settings.Config, log *zap.Logger) error {
	scenarios := []struct {
		name string
		fn   func(d settings.Demo) error
	}{
		{"default_construction", scenarioDefaultConstruction},
		{"sized_construction", scenarioSizedConstruction},
		{"filled_construction", scenarioFilledConstruction},
		{"literal_construction", scenarioLiteralConstruction},
		{"checked_access", scenarioCheckedAccess},
		{"clear", scenarioClear},
		{"resize", scenarioResize},
		{"iteration", scenarioIteration},
		{"reserve_construction", scenarioReserveConstruction},
		{"reserve_method", scenarioReserveMethod},
		{"move_construction", scenarioMoveConstruction},
		{"move_assignment", scenarioMoveAssignment},
		{"push_back_growth", scenarioPushBackGrowth},
		{"insert", scenarioInsert},
		{"erase", scenarioErase},
		{"allocation_limit", scenarioAllocationLimit},
		{"pooled_vectors", scenarioPooledVectors},
	}

	g := new(errgroup.Group)
	for _, s := range scenarios {
		g.Go(func() error {
			if err := s.fn(cfg.Demo); err != nil {
				log.Error("scenario failed", zap.String("scenario", s.name), zap.Error(err))
				return errors.Wrap(err, s.name)
			}
			log.Info("scenario passed", zap.String("scenario", s.name))
			return nil
		})
	}
	return g.Wait()
}

// generateVector builds [1, 2, ..., n].
func generateVector(n int) *vector.Vector[int] {
	v := vector.NewSized[int](n)
	for i := 0; i < n; i++ {
		v.Set(i, i+1)
	}
	return v
}

func scenarioDefaultConstruction(settings.Demo) error {
	v := vector.New[int]()
	if v.Len() != 0 || v.Cap() != 0 || !v.IsEmpty() {
		return errors.Errorf("len=%d cap=%d, want an empty unallocated vector", v.Len(), v.Cap())
	}
	return nil
}

func scenarioSizedConstruction(settings.Demo) error {
	v := vector.NewSized[int](5)
	if v.Len() != 5 || v.Cap() != 5 || v.IsEmpty() {
		return errors.Errorf("len=%d cap=%d, want 5, 5", v.Len(), v.Cap())
	}
	for i := 0; i < v.Len(); i++ {
		if v.Get(i) != 0 {
			return errors.Errorf("element %d = %d, want zero value", i, v.Get(i))
		}
	}
	return nil
}

func scenarioFilledConstruction(settings.Demo) error {
	v := vector.NewFilled(3, 42)
	if v.Len() != 3 || v.Cap() != 3 {
		return errors.Errorf("len=%d cap=%d, want 3, 3", v.Len(), v.Cap())
	}
	return v.Each(func(x int) error {
		if x != 42 {
			return errors.Errorf("element = %d, want 42", x)
		}
		return nil
	})
}

func scenarioLiteralConstruction(settings.Demo) error {
	v := vector.Of(1, 2, 3)
	if v.Len() != 3 || v.Cap() != 3 {
		return errors.Errorf("len=%d cap=%d, want 3, 3", v.Len(), v.Cap())
	}
	if v.Get(2) != 3 {
		return errors.Errorf("element 2 = %d, want 3", v.Get(2))
	}
	return nil
}

func scenarioCheckedAccess(settings.Demo) error {
	v := vector.NewSized[int](3)
	got, err := v.At(2)
	if err != nil {
		return err
	}
	if got != v.Get(2) {
		return errors.Errorf("At(2) = %d, Get(2) = %d, want equal", got, v.Get(2))
	}
	if _, err := v.At(3); !errors.Is(err, vector.ErrOutOfRange) {
		return errors.Errorf("At(3) error = %v, want ErrOutOfRange", err)
	}
	return nil
}

func scenarioClear(settings.Demo) error {
	v := vector.NewSized[int](10)
	oldCap := v.Cap()
	v.Clear()
	if v.Len() != 0 || v.Cap() != oldCap {
		return errors.Errorf("len=%d cap=%d after Clear, want 0, %d", v.Len(), v.Cap(), oldCap)
	}
	return nil
}

func scenarioResize(settings.Demo) error {
	v := vector.NewSized[int](3)
	v.Set(2, 17)
	if err := v.Resize(7); err != nil {
		return err
	}
	if v.Len() != 7 || v.Cap() < 7 || v.Get(2) != 17 || v.Get(3) != 0 {
		return errors.Errorf("grow: len=%d cap=%d v[2]=%d v[3]=%d", v.Len(), v.Cap(), v.Get(2), v.Get(3))
	}

	oldCap := v.Cap()
	if err := v.Resize(2); err != nil {
		return err
	}
	if v.Len() != 2 || v.Cap() != oldCap {
		return errors.Errorf("shrink: len=%d cap=%d, want 2, %d", v.Len(), v.Cap(), oldCap)
	}

	// Regrowing over truncated slots must expose zero values again.
	if err := v.Resize(4); err != nil {
		return err
	}
	if v.Get(2) != 0 {
		return errors.Errorf("regrow: v[2] = %d, want zero value", v.Get(2))
	}
	return nil
}

func scenarioIteration(settings.Demo) error {
	empty := vector.New[int]()
	if !empty.Begin().Equal(empty.End()) {
		return errors.New("Begin and End of an empty vector must compare equal")
	}

	v := vector.NewFilled(10, 42)
	if !v.Begin().Valid() || v.Begin().Value() != 42 {
		return errors.New("Begin must dereference to the first element")
	}
	if !v.End().Equal(v.Begin().Add(v.Len())) {
		return errors.New("End must equal Begin advanced by Len")
	}
	if v.End().Prev().Value() != 42 {
		return errors.New("End-1 must dereference to the last element")
	}
	return nil
}

func scenarioReserveConstruction(settings.Demo) error {
	v := vector.NewReserved[int](vector.Reserve(5))
	if v.Cap() != 5 || !v.IsEmpty() {
		return errors.Errorf("len=%d cap=%d, want 0, 5", v.Len(), v.Cap())
	}
	return nil
}

func scenarioReserveMethod(settings.Demo) error {
	v := vector.New[int]()
	if err := v.Reserve(5); err != nil {
		return err
	}
	if v.Cap() != 5 || !v.IsEmpty() {
		return errors.Errorf("len=%d cap=%d, want 0, 5", v.Len(), v.Cap())
	}

	// Reserve never shrinks.
	if err := v.Reserve(1); err != nil {
		return err
	}
	if v.Cap() != 5 {
		return errors.Errorf("cap=%d after Reserve(1), want 5", v.Cap())
	}

	for i := 0; i < 10; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}
	if err := v.Reserve(100); err != nil {
		return err
	}
	if v.Len() != 10 || v.Cap() != 100 {
		return errors.Errorf("len=%d cap=%d, want 10, 100", v.Len(), v.Cap())
	}
	for i := 0; i < 10; i++ {
		if v.Get(i) != i {
			return errors.Errorf("element %d = %d after Reserve, want %d", i, v.Get(i), i)
		}
	}
	return nil
}

func scenarioMoveConstruction(d settings.Demo) error {
	src := generateVector(d.Elements)

	moved := vector.New[int]()
	moved.MoveFrom(src)
	if moved.Len() != d.Elements {
		return errors.Errorf("len=%d after move, want %d", moved.Len(), d.Elements)
	}
	if src.Len() != 0 || src.Cap() != 0 {
		return errors.Errorf("source len=%d cap=%d after move, want 0, 0", src.Len(), src.Cap())
	}
	return nil
}

func scenarioMoveAssignment(d settings.Demo) error {
	src := generateVector(d.Elements)

	moved := vector.Of(7, 8, 9)
	moved.MoveFrom(src)
	if moved.Len() != d.Elements || src.Len() != 0 {
		return errors.Errorf("len=%d source len=%d, want %d, 0", moved.Len(), src.Len(), d.Elements)
	}
	if moved.Get(0) != 1 || moved.Get(d.Elements-1) != d.Elements {
		return errors.New("moved sequence does not match the source's prior contents")
	}
	return nil
}

func scenarioPushBackGrowth(d settings.Demo) error {
	limit := d.Elements
	if d.MaxCapacity > 0 && d.MaxCapacity < limit {
		limit = d.MaxCapacity
	}

	v := vector.New[int]()
	if d.MaxCapacity > 0 {
		v.WithMaxCapacity(d.MaxCapacity)
	}
	for i := 0; i < limit; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
		if v.Cap() < v.Len() {
			return errors.Errorf("cap=%d < len=%d", v.Cap(), v.Len())
		}
	}
	if v.Len() != limit {
		return errors.Errorf("len=%d, want %d", v.Len(), limit)
	}
	return nil
}

func scenarioInsert(settings.Demo) error {
	v := vector.New[int]()
	for i := 0; i < 5; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}

	// Front, back, middle — mirroring positions through cursors.
	if _, err := v.Insert(v.Begin().Pos(), 6); err != nil {
		return err
	}
	if v.Len() != 6 || v.Begin().Value() != 6 {
		return errors.Errorf("front insert: len=%d first=%d", v.Len(), v.Begin().Value())
	}
	if _, err := v.Insert(v.End().Pos(), 7); err != nil {
		return err
	}
	if v.Len() != 7 || v.End().Prev().Value() != 7 {
		return errors.Errorf("back insert: len=%d last=%d", v.Len(), v.End().Prev().Value())
	}
	if _, err := v.Insert(v.Begin().Add(3).Pos(), 8); err != nil {
		return err
	}
	if v.Len() != 8 || v.Begin().Add(3).Value() != 8 {
		return errors.Errorf("middle insert: len=%d v[3]=%d", v.Len(), v.Begin().Add(3).Value())
	}
	return nil
}

func scenarioErase(settings.Demo) error {
	v := vector.Of(0, 1, 2)
	next := v.Erase(v.Begin().Pos())
	if got := v.Get(next); got != 1 {
		return errors.Errorf("element after erase = %d, want 1", got)
	}
	if v.Len() != 2 {
		return errors.Errorf("len=%d after erase, want 2", v.Len())
	}
	return nil
}

func scenarioAllocationLimit(settings.Demo) error {
	v := vector.New[int]().WithMaxCapacity(2)
	for i := 0; i < 2; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}

	err := v.PushBack(2)
	if !errors.Is(err, vector.ErrAllocationFailure) {
		return errors.Errorf("PushBack over limit error = %v, want ErrAllocationFailure", err)
	}
	if v.Len() != 2 || v.Cap() != 2 {
		return errors.Errorf("len=%d cap=%d after failed growth, want 2, 2 (unchanged)", v.Len(), v.Cap())
	}
	return nil
}

func scenarioPooledVectors(settings.Demo) error {
	pool := vecpool.New[int]()

	v := pool.Get(100)
	if v.Cap() < 100 || !v.IsEmpty() {
		return errors.Errorf("pooled vector len=%d cap=%d, want empty with cap >= 100", v.Len(), v.Cap())
	}
	for i := 0; i < 100; i++ {
		if err := v.PushBack(i); err != nil {
			return err
		}
	}
	pool.Put(v)

	reused := pool.Get(100)
	if !reused.IsEmpty() {
		return errors.New("pool must hand out empty vectors")
	}
	return nil
}
