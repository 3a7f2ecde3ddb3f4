package storefront

import (
	"errors"
	"fmt"

	"github.com/luxstudio/storefront-core/internal/model"
)

var ErrUnknownOption = errors.New("unknown service option")

// Quote — итог бронирования: снимок выбранных опций и полная цена.
// Снимок берётся из каталога в момент вызова; дальнейшие правки каталога
// на него не влияют.
type Quote struct {
	ServiceName string
	Options     []model.OptionSnapshot
	Total       int64
}

// BuildQuote resolves the chosen option names against the catalog entry and
// sums the price: base + each selected option. Option names must match a
// row of the entry exactly; duplicates in the selection are counted once
// per occurrence in the catalog at most.
func BuildQuote(svc *model.Service, optionNames []string) (Quote, error) {
	q := Quote{
		ServiceName: svc.Name,
		Options:     []model.OptionSnapshot{},
		Total:       svc.Price,
	}

	if len(optionNames) == 0 {
		return q, nil
	}

	// Index catalog rows by name; a name may legitimately repeat.
	remaining := make(map[string][]model.ServiceOption, len(svc.Options))
	for _, opt := range svc.Options {
		remaining[opt.Name] = append(remaining[opt.Name], opt)
	}

	for _, name := range optionNames {
		rows := remaining[name]
		if len(rows) == 0 {
			return Quote{}, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
		row := rows[0]
		remaining[name] = rows[1:]

		q.Options = append(q.Options, model.OptionSnapshot{Name: row.Name, Price: row.Price})
		q.Total += row.Price
	}

	return q, nil
}
