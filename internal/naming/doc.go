// Package naming normalizes a free-form personal name into first, middle and
// last name slots.
//
// A parse runs a fixed sequence of pure stages:
//
//   - Tokenize(raw) splits the trimmed input on single spaces.
//   - NormalizeFragment runs the ordered [CellSteps] table on each token:
//     NFC, markup stripping, alphabet-aware lowercasing, letter filtering,
//     trimming and doubled-initial collapse.
//   - Partition splits normalized fragments into survivors and rejects using
//     the vowel heuristic in [IsPlausible].
//   - Survivors are title-cased, then AssignRoles maps them onto slots by
//     count and a middle name equal to the first name is dropped.
//
// Parsing never fails. An unusable name is a [Result] with IsValid false and
// a nil Name. Rejected fragments are kept in Result.Invalid.
package naming
