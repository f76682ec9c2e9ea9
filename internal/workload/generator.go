package workload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/benchkit/ycsb-tools/internal/store"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// ErrAborted is returned when the operator declines the confirmation prompt.
var ErrAborted = errors.New("generation aborted")

// Confirmer decides whether generation proceeds once the number of files to
// be written is known. The CLI wires an interactive prompt here; tests and
// --yes wire stubs.
type Confirmer func(numFiles int64) (bool, error)

// AlwaysConfirm accepts without prompting.
func AlwaysConfirm(int64) (bool, error) { return true, nil }

// Generator renders one workload file per partition and writes them through
// a ConfigStore, followed by a manifest of what was written.
type Generator struct {
	store   store.ConfigStore
	confirm Confirmer
	tuning  Tuning
	log     *slog.Logger
}

// NewGenerator wires a generator. A nil confirm accepts everything; a nil
// log uses the default logger.
func NewGenerator(st store.ConfigStore, confirm Confirmer, tuning Tuning, log *slog.Logger) *Generator {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{store: st, confirm: confirm, tuning: tuning, log: log}
}

// Run validates the request, confirms the partition count with the operator
// and writes one rendered file per partition plus the run manifest. The
// first write error aborts the remaining loop.
func (g *Generator) Run(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	template, err := os.ReadFile(req.TemplatePath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", req.TemplatePath, err)
	}

	plan := PlanFor(req.RecordCount, req.InsertCount)

	ok, err := g.confirm(plan.NumPartitions)
	if err != nil {
		return fmt.Errorf("confirm generation: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w before writing %d files", ErrAborted, plan.NumPartitions)
	}

	files := make([]store.FileInfo, 0, plan.NumPartitions)
	for i := int64(0); i < plan.NumPartitions; i++ {
		part := plan.Partition(i)

		rendered, err := Render(string(template), Context(req, g.tuning, part))
		if err != nil {
			return fmt.Errorf("partition %d: %w", i, err)
		}

		name := fmt.Sprintf("%s_%d", req.OutputPrefix, i)
		data := []byte(rendered)
		if err := g.store.Write(ctx, name, data); err != nil {
			return fmt.Errorf("partition %d: %w", i, err)
		}

		g.log.Debug("wrote workload file",
			"name", name,
			"insert_start", part.InsertStart,
			"insert_count", part.InsertCount)

		files = append(files, store.FileInfo{
			Name:        name,
			Checksum:    store.Checksum(data),
			ByteSize:    int64(len(data)),
			InsertStart: part.InsertStart,
			InsertCount: part.InsertCount,
		})
	}

	manifest := &store.Manifest{
		Files: files,
		Producer: store.ProducerInfo{
			Name:    "workloadgen",
			Version: Version,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := g.store.WriteManifest(ctx, manifest); err != nil {
		return err
	}

	g.log.Info("generation complete",
		"files", plan.NumPartitions,
		"record_count", req.RecordCount,
		"insert_count", req.InsertCount)
	return nil
}
