// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the JSON API.
package dto

import "github.com/jsamuelsen11/member-roster/internal/domain/member"

// MemberResponse represents a single member in HTTP responses. ID is the
// identifier used in /api/v1/members/{id}; it currently equals Name.
type MemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MemberListResponse represents the full roster in HTTP responses.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}

// DeleteResponse reports how many entries a delete removed.
type DeleteResponse struct {
	Removed int `json:"removed"`
}

// ToMemberResponse converts a domain Member to an HTTP response DTO.
func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:   m.ID(),
		Name: m.Name,
	}
}

// ToMemberListResponse converts the roster to an HTTP list response DTO.
// An empty roster yields an empty, non-null members array.
func ToMemberListResponse(members []member.Member) MemberListResponse {
	items := make([]MemberResponse, len(members))
	for i := range members {
		items[i] = ToMemberResponse(&members[i])
	}
	return MemberListResponse{
		Members: items,
		Count:   len(items),
	}
}
