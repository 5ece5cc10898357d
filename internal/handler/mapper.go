package handler

import "github.com/bagdasarian/team-attendance/internal/domain"

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Role:      string(member.Role),
		Email:     member.Email,
		Phone:     member.Phone,
		Track:     member.Track,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func httpMemberToDomain(req MemberRequest) *domain.Member {
	return &domain.Member{
		ID:    req.ID,
		Name:  req.Name,
		Role:  domain.Role(req.Role),
		Email: req.Email,
		Phone: req.Phone,
		Track: req.Track,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:  team.ID,
		Note:    team.Note,
		Members: domainMembersToHTTP(team.Members),
	}
}

func domainAttendanceToHTTP(record *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID: record.ID,
		Member: AttendanceMemberResponse{
			ID:   record.Member.ID,
			Name: record.Member.Name,
		},
		Status: string(record.Status),
		Note:   record.Note,
		Score:  record.Score,
	}
}

func domainAttendancesToHTTP(records []*domain.AttendanceRecord) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, domainAttendanceToHTTP(record))
	}
	return result
}

func domainSessionsToHTTP(sessions []*domain.Session) []SessionResponse {
	result := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, SessionResponse{
			ID:          session.ID,
			Date:        session.Date,
			Time:        session.Time,
			Attendances: domainAttendancesToHTTP(session.Attendances),
		})
	}
	return result
}

func httpSlotsToDomain(req []SessionRequest) []domain.SessionSlot {
	slots := make([]domain.SessionSlot, 0, len(req))
	for _, s := range req {
		slots = append(slots, domain.SessionSlot{Date: s.Date, Time: s.Time})
	}
	return slots
}

func httpUpdatesToDomain(req []AttendanceUpdateRequest) []domain.AttendanceUpdate {
	updates := make([]domain.AttendanceUpdate, 0, len(req))
	for _, u := range req {
		updates = append(updates, domain.AttendanceUpdate{
			ID:     u.ID,
			Status: domain.AttendanceStatus(u.Status),
			Note:   u.Note,
			Score:  u.Score,
		})
	}
	return updates
}

func domainDocumentToHTTP(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		TeamID:      doc.TeamID,
		Title:       doc.Title,
		Description: doc.Description,
		Content:     doc.Content,
		CreatedAt:   doc.CreatedAt,
	}
}

func domainDocumentsToHTTP(docs []*domain.Document) []DocumentResponse {
	result := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, domainDocumentToHTTP(doc))
	}
	return result
}

func httpDocumentToDomain(req DocumentRequest) *domain.Document {
	return &domain.Document{
		ID:          req.ID,
		TeamID:      req.TeamID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	}
}
