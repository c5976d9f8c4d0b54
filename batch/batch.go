// Package batch orchestrates the upload of one or more files submitted
// under a single field.
//
// A Batch is built from the transport signal of a host environment: every
// successfully staged file becomes a FileInfo entry, every failed one a
// recorded error line. Callers then register validators and lifecycle
// hooks, check IsValid, and call Upload to delegate persistence to a
// storage backend.
//
// Validation is collective: every validator runs against every entry and
// failures accumulate, so a caller gets the complete picture in one pass.
// Persistence is fail-fast: the first storage error aborts the remaining
// entries and files persisted before it are not rolled back.
package batch

import (
	"context"
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/upload/fileinfo"
	"github.com/rise-and-shine/upload/logger"
	"github.com/rise-and-shine/upload/storage"
	"github.com/rise-and-shine/upload/transport"
	"github.com/rise-and-shine/upload/validation"
)

// Error codes for batch operations.
const (
	// CodeUploadsDisabled is returned when the host environment has file
	// uploads disabled.
	CodeUploadsDisabled = "UPLOADS_DISABLED"

	// CodeFieldNotFound is returned when the requested field has no entry
	// in the transport signal.
	CodeFieldNotFound = "FIELD_NOT_FOUND"

	// CodeBatchInvalid is carried by the aggregate error Upload returns
	// for a batch that failed validation.
	CodeBatchInvalid = "UPLOAD_BATCH_INVALID"
)

// Hook is a lifecycle callback invoked with the file currently being
// processed. Four slots exist: before/after validation and before/after
// upload. A hook that panics propagates to the caller.
type Hook func(f fileinfo.FileInfo)

// Factory builds a FileInfo from a staged path and the client-submitted
// filename. It is the integration point for computing size, mimetype,
// checksum and dimensions.
type Factory func(tmpPath, name string) (fileinfo.FileInfo, error)

// Batch orchestrates validation and persistence of the files submitted
// under one field. A Batch is not safe for concurrent use.
type Batch struct {
	field   string
	store   storage.Storage
	entries []fileinfo.FileInfo

	validations []validation.Validation

	// transportErrs is fixed at construction; validationErrs is
	// recomputed by every IsValid call, which keeps IsValid idempotent.
	transportErrs  []string
	validationErrs []string

	beforeValidation Hook
	afterValidation  Hook
	beforeUpload     Hook
	afterUpload      Hook

	factory Factory
	log     logger.Logger
}

// Option configures a Batch during construction.
type Option func(*Batch)

// WithLogger attaches a logger to the batch. Defaults to a nop logger.
func WithLogger(log logger.Logger) Option {
	return func(b *Batch) { b.log = log }
}

// WithFactory replaces the default FileInfo factory.
func WithFactory(factory Factory) Option {
	return func(b *Batch) { b.factory = factory }
}

// New builds a batch from the transport signal recorded for the given
// field.
//
// It fails when the host has uploads disabled or when the field has no
// entry in the signal. Per-file transport failures do not fail
// construction: they are recorded as error lines and the affected file
// yields no entry, so the rest of the submission is still processed.
func New(tr transport.Transport, field string, store storage.Storage, opts ...Option) (*Batch, error) {
	if !tr.UploadsEnabled() {
		return nil, errx.New(
			"file uploads are disabled in the host environment",
			errx.WithCode(CodeUploadsDisabled),
		)
	}

	signals, ok := tr.Files(field)
	if !ok {
		return nil, errx.New(
			"field not found in the upload signal",
			errx.WithCode(CodeFieldNotFound),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"field": field}),
		)
	}

	b := &Batch{
		field:   field,
		store:   store,
		factory: defaultFactory,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("batch").With("field", field)

	for _, sig := range signals {
		if sig.Code != transport.CodeOK {
			b.transportErrs = append(b.transportErrs, formatError(sig.Name, sig.Code.Message()))
			continue
		}

		entry, err := b.factory(sig.TmpPath, sig.Name)
		if err != nil {
			b.log.Warnw("failed to read staged file", "name", sig.Name, "error", err)
			b.transportErrs = append(b.transportErrs, formatError(sig.Name, "Failed to read the staged file"))
			continue
		}

		b.entries = append(b.entries, entry)
	}

	return b, nil
}

func defaultFactory(tmpPath, name string) (fileinfo.FileInfo, error) {
	return fileinfo.New(tmpPath, name, fileinfo.WithUploaded())
}

// AddValidation appends a validator to the chain and returns the batch
// for chaining. Validators run in registration order.
func (b *Batch) AddValidation(v validation.Validation) *Batch {
	b.validations = append(b.validations, v)
	return b
}

// AddValidations appends multiple validators to the chain.
func (b *Batch) AddValidations(vs ...validation.Validation) *Batch {
	b.validations = append(b.validations, vs...)
	return b
}

// OnBeforeValidation sets the hook invoked before each entry is
// validated. A later registration replaces the former; nil clears it.
func (b *Batch) OnBeforeValidation(h Hook) *Batch {
	b.beforeValidation = h
	return b
}

// OnAfterValidation sets the hook invoked after each entry is validated.
func (b *Batch) OnAfterValidation(h Hook) *Batch {
	b.afterValidation = h
	return b
}

// OnBeforeUpload sets the hook invoked before each entry is persisted.
func (b *Batch) OnBeforeUpload(h Hook) *Batch {
	b.beforeUpload = h
	return b
}

// OnAfterUpload sets the hook invoked after each entry is persisted.
func (b *Batch) OnAfterUpload(h Hook) *Batch {
	b.afterUpload = h
	return b
}

// IsValid runs every registered validator against every entry, in order,
// and reports whether the batch carries no errors.
//
// Validation failures do not short-circuit: one entry may accumulate
// several error lines and later entries still run. Entries that did not
// arrive through the upload transport are rejected outright and skip
// the validator chain.
//
// The validation sweep is recomputed on every call; transport-level
// errors recorded at construction always remain.
func (b *Batch) IsValid() bool {
	b.validationErrs = nil

	for _, entry := range b.entries {
		if b.beforeValidation != nil {
			b.beforeValidation(entry)
		}

		b.validateEntry(entry)

		if b.afterValidation != nil {
			b.afterValidation(entry)
		}
	}

	return len(b.transportErrs) == 0 && len(b.validationErrs) == 0
}

func (b *Batch) validateEntry(entry fileinfo.FileInfo) {
	if !entry.IsUploadedFile() {
		b.validationErrs = append(b.validationErrs, formatError(entry.NameWithExtension(), "Is not an uploaded file"))
		return
	}

	for _, v := range b.validations {
		if err := v.Validate(entry); err != nil {
			b.log.Debugw("validation failed",
				"file", entry.NameWithExtension(),
				"error", err,
			)
			b.validationErrs = append(b.validationErrs, formatError(entry.NameWithExtension(), err.Error()))
		}
	}
}

// Upload validates the batch and delegates every entry to the storage
// backend, in order.
//
// An invalid batch produces an aggregate error carrying the full error
// list; the backend is never touched. A storage failure propagates
// immediately: remaining entries are not attempted and entries already
// persisted are not rolled back.
func (b *Batch) Upload(ctx context.Context) error {
	if !b.IsValid() {
		return errx.New(
			"upload rejected: one or more files failed validation",
			errx.WithCode(CodeBatchInvalid),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"errors": b.Errors()}),
		)
	}

	for _, entry := range b.entries {
		if b.beforeUpload != nil {
			b.beforeUpload(entry)
		}

		if err := b.store.Upload(ctx, entry); err != nil {
			return errx.Wrap(err, errx.WithDetails(errx.D{
				"file":     entry.NameWithExtension(),
				"pathname": entry.Pathname(),
			}))
		}

		b.log.Infow("file persisted",
			"file", entry.NameWithExtension(),
			"pathname", entry.Pathname(),
		)

		if b.afterUpload != nil {
			b.afterUpload(entry)
		}
	}

	return nil
}

// Errors returns the accumulated error lines: transport failures first,
// then the latest validation sweep. Each line reads
// "<name-with-extension>: <message>".
func (b *Batch) Errors() []string {
	if len(b.transportErrs) == 0 && len(b.validationErrs) == 0 {
		return nil
	}

	out := make([]string, 0, len(b.transportErrs)+len(b.validationErrs))
	out = append(out, b.transportErrs...)
	out = append(out, b.validationErrs...)
	return out
}

// Validations returns the registered validator chain in registration
// order.
func (b *Batch) Validations() []validation.Validation {
	return b.validations
}

// Field returns the field identifier the batch was built from.
func (b *Batch) Field() string {
	return b.field
}

func formatError(name, message string) string {
	return fmt.Sprintf("%s: %s", name, message)
}
