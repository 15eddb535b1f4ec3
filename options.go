package intern

// Option configures a Table.
type Option func(*config)

type config struct {
	chunkSize int
}

// WithChunkSize sets the size in bytes of the first arena chunk. Later chunks
// double in size up to MaxChunkSize. Values <= 0 keep DefaultChunkSize.
func WithChunkSize(bytes int) Option {
	return func(c *config) {
		if bytes > 0 {
			c.chunkSize = bytes
		}
	}
}
