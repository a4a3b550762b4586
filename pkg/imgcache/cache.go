package imgcache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	defaultNumCounters = 1e6
	defaultMaxCost     = 256 << 20 // 画像バイト列を想定した総量上限（バイト）
	defaultBufferItems = 64
)

// Cache は ristretto を用いた画像バイト列キャッシュです。
// imagepig.ImageCacher を実装し、クライアントの WithImageCache にそのまま渡せます。
type Cache struct {
	inner *ristretto.Cache[string, any]
}

// New は既定設定のキャッシュを生成します。
func New() (*Cache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Get は、指定されたキーに紐づくアイテムを取得します。
func (c *Cache) Get(key string) (any, bool) {
	return c.inner.Get(key)
}

// Set は値を有効期限付きで保存します。d が 0 の場合は無期限です。
// コストはバイト列長、それ以外の型は 1 として扱います。
func (c *Cache) Set(key string, value any, d time.Duration) {
	cost := int64(1)
	if data, ok := value.([]byte); ok {
		cost = int64(len(data))
	}
	c.inner.SetWithTTL(key, value, cost, d)
}

// Wait は書き込みバッファの反映を待ちます。主にテストで使用します。
func (c *Cache) Wait() {
	c.inner.Wait()
}

// Close は内部リソースを解放します。
func (c *Cache) Close() {
	c.inner.Close()
}
