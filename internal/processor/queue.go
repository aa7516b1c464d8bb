package processor

import (
	"context"
	"fmt"
)

func (p *implProcessor) ProcessNext(ctx context.Context, decide DecisionFunc) (Result, bool, error) {
	item, ok, err := p.deps.Queue.Next()
	if err != nil {
		return Result{}, false, fmt.Errorf("load queue: %w", err)
	}
	if !ok {
		p.logger.Info(ctx, "Queue is empty")
		return Result{}, false, nil
	}

	res := p.Process(ctx, item)
	if _, err := p.settle(ctx, res, decide); err != nil {
		return res, true, err
	}
	return res, true, nil
}

func (p *implProcessor) ProcessAll(ctx context.Context, decide DecisionFunc) (Batch, error) {
	items, err := p.deps.Queue.Load()
	if err != nil {
		return Batch{}, fmt.Errorf("load queue: %w", err)
	}
	if len(items) == 0 {
		p.logger.Info(ctx, "Queue is empty")
		return Batch{}, nil
	}
	return p.ProcessItems(ctx, items, decide)
}

func (p *implProcessor) ProcessItems(ctx context.Context, items []string, decide DecisionFunc) (Batch, error) {
	batch := Batch{Total: len(items)}
	if len(items) == 0 {
		return batch, nil
	}

	p.logger.Info(ctx, "Processing %d items...", len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		res := p.Process(ctx, item)
		batch.Results = append(batch.Results, res)
		if res.OK() {
			batch.Succeeded++
		}

		removed, err := p.settle(ctx, res, decide)
		if removed {
			batch.Removed++
		}
		if p.onItemDone != nil {
			p.onItemDone(res)
		}
		if err != nil {
			return batch, err
		}
	}

	p.logger.Info(ctx, "Results: %d/%d items processed successfully", batch.Succeeded, batch.Total)
	return batch, nil
}

// settle removes a finished item from the queue, or a failed one when the
// caller decides to drop it.
func (p *implProcessor) settle(ctx context.Context, res Result, decide DecisionFunc) (bool, error) {
	if !res.OK() {
		if decide == nil || !decide(res.Item, res.Err) {
			p.logger.Warn(ctx, "Keeping failed item in queue: %s", res.Item)
			return false, nil
		}
	}

	removed, err := p.deps.Queue.Remove(ctx, res.Item)
	if err != nil {
		return false, fmt.Errorf("remove %s from queue: %w", res.Item, err)
	}
	return removed, nil
}
