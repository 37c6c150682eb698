// Package diag defines Lumen's diagnostic vocabulary: severities, stable
// codes, the Diagnostic record, a capped Bag collector, and a small
// fluent builder phases use to report problems without depending on how
// they are eventually rendered or capped.
package diag
