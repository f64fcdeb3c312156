package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	"openflexSite/internal/database"
)

// ClientUpdate 是批量保存中单行的目标状态。
type ClientUpdate struct {
	ID      uint
	Name    string
	LogoURL string
	Order   int
}

// ClientResult 记录批量保存中单行的结果；Err 为 nil 表示成功。
type ClientResult struct {
	ID     uint
	Client *database.Client
	Err    error
}

// 批量更新的并发上限。行与行之间相互独立，放开并发即可，
// 但不必把连接池占满。
const batchUpdateLimit = 4

// UpdateClientsBatch 并发地逐行更新客户，等全部结束后返回与入参
// 同序的逐项结果。不做回滚：失败行不影响已成功的行。
func (s *Store) UpdateClientsBatch(ctx context.Context, updates []ClientUpdate) []ClientResult {
	results := make([]ClientResult, len(updates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchUpdateLimit)
	for i, u := range updates {
		i, u := i, u
		g.Go(func() error {
			client, err := s.UpdateClient(ctx, u.ID, u.Name, u.LogoURL, u.Order)
			results[i] = ClientResult{ID: u.ID, Client: client, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
