// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CastVoteRequest: option
  - SetPickRequest: label ("yes" or "no")
  - RSVPRequest: name, email, phone, childcare, comments

# Response Types

Types for JSON responses:

  - CastVoteResponse: recorded, option, message
  - SetPickResponse: item_id, label, summary
  - ProfileResponse: profile, recovered
  - ResetResponse: cleared
  - ErrorResponse: error, message, field

# Domain Types

Internal data structures:

  - Poll / PollOption: fixed poll content with running tallies
  - UserVote: the single recorded ballot per poll
  - PollResults / OptionResult: tallies with rounded percentages
  - PickItem / Pick / PickSummary: yes-no grid state
  - RSVP: event attendance record
  - CalendarEvent: fixed event content for the ICS feed
  - ConsolidatedExport: the downloadable snapshot of all activity

# Constants

Pick labels:

	LabelYes = "yes"
	LabelNo  = "no"
*/
package models
