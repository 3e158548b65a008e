package low

type (
	// Buf is an append buffer. The consumer renders a batch of records into
	// one and hands it to the sink in a single write.
	Buf []byte
)

func (w *Buf) Reset() {
	*w = (*w)[:0]
}

func (w *Buf) NewLine() {
	l := len(*w)
	if l == 0 || (*w)[l-1] != '\n' {
		*w = append(*w, '\n')
	}
}

func (w *Buf) Len() int      { return len(*w) }
func (w *Buf) Bytes() []byte { return *w }
