package localstore

import (
	"context"
	"unicode/utf16"

	"pawlog/internal/domain/pawlog"
)

// DefaultQuotaBytes es el límite típico de localStorage en navegadores.
const DefaultQuotaBytes int64 = 5 * 1024 * 1024

// storedSize estima bytes como unidades UTF-16 x 2.
func storedSize(s string) int64 {
	var n int64
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n * 2
}

// usageLocked suma el tamaño de las keys conocidas, sin contar skip.
func (a *Adapter) usageLocked(ctx context.Context, skip map[string]string) (int64, error) {
	var used int64
	for _, k := range knownKeys {
		if _, ok := skip[k]; ok {
			continue
		}
		v, ok, err := a.kv.Get(ctx, k)
		if err != nil {
			return 0, &pawlog.StorageError{Op: "read", Key: k, Err: err}
		}
		if ok {
			used += storedSize(v)
		}
	}
	return used, nil
}

// checkQuotaLocked falla con ErrQuotaExceeded si escribir values supera la cuota.
func (a *Adapter) checkQuotaLocked(ctx context.Context, values map[string]string) error {
	if a.quota <= 0 {
		return nil
	}
	used, err := a.usageLocked(ctx, values)
	if err != nil {
		return err
	}
	for _, v := range values {
		used += storedSize(v)
	}
	if used > a.quota {
		return pawlog.ErrQuotaExceeded
	}
	return nil
}

// Usage reporta bytes usados sobre la cuota.
func (a *Adapter) Usage(ctx context.Context) (pawlog.StorageUsage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	used, err := a.usageLocked(ctx, nil)
	if err != nil {
		return pawlog.StorageUsage{}, err
	}
	u := pawlog.StorageUsage{Used: used, Total: a.quota}
	if a.quota > 0 {
		u.Percentage = float64(used) / float64(a.quota) * 100
	}
	return u, nil
}
