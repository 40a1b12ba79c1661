// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the voting state manager.

All persisted engagement state is owned by Store: poll tallies, the
profile's write-once votes, the freely revisable pick labels, the
"about you" record, the RSVP record, and the consolidated export
document. HTTP handlers stay a thin projection over it.

# State rules

Polls follow a one-way, one-shot transition per poll:

	Unvoted → Voted(option)

CastVote returns ErrAlreadyVoted on any later attempt; only ResetAll
goes back. Picks have no such rule - SetPick is last-write-wins and
idempotent under repeated identical calls.

The invariant total == sum(option counts) is maintained inside the
CastVote transaction.

# Percentages

PollResults computes round(count / max(1, total) * 100) per option.
Zero-total polls render 0% everywhere; independent rounding means the
percentages may not sum to exactly 100.

# Consolidated export

Consolidated recomputes the export document (profile, picks, votes,
summary) from current state and never mutates. Every write refreshes
the persisted copy as a side effect; ErrNothingToExport is returned
when no votes and no picks exist.

# Recovery

Profile reads that hit a corrupt JSON payload substitute an empty
record and report it via the recovered return value, so callers can
tell "empty by default" from "corrupt data recovered".
*/
package store
