package interfaces

import "context"

// IQuoteMailbox is the single-slot hand-off between the quote builder and the
// contact form of one visitor session.
//
//   - Publish overwrites whatever is waiting (last write wins) and signals
//     subscribers.
//   - TakeIfPresent reads and clears the slot.
//   - Subscribe delivers one signal per publish until ctx is done; the signal
//     carries no payload, consumers pull with TakeIfPresent.
type IQuoteMailbox interface {
	Publish(ctx context.Context, sessionID, message string) error
	TakeIfPresent(ctx context.Context, sessionID string) (message string, ok bool, err error)
	Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, error)
}
