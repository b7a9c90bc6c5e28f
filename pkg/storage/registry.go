package storage

// AccountRegistry resolves human-readable usernames to account ids.
// The registry is owned by the user layer; the ledger only consults it
// when resolving transfer recipients and never creates, renames or
// deletes entries.
type AccountRegistry interface {
	Resolve(username string) (int64, bool)
}
