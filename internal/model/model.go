package model

import (
	"encoding/json"
	"time"
)

type CopyStatus string

const (
	CopyOnRack CopyStatus = "on_rack"
	CopyIssued CopyStatus = "issued_to"
	CopyLost   CopyStatus = "lost"
)

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

type User struct {
	Email          string  `json:"email" db:"email"`
	Name           string  `json:"name" db:"name"`
	Active         bool    `json:"active" db:"active"`
	HashedPassword *string `json:"-" db:"hashed_password"`
}

// UserSummary is the admin user listing row.
type UserSummary struct {
	User
	LabAccessCount   int `json:"lab_access_count" db:"lab_access_count"`
	ActiveBorrowings int `json:"active_borrowings" db:"active_borrowings"`
}

type Lab struct {
	IDLab int    `json:"id_lab" db:"id_lab"`
	Name  string `json:"name" db:"name"`
}

// LabSummary is the public lab listing row with copy counters.
type LabSummary struct {
	Lab
	TotalCopies     int `json:"total_copies" db:"total_copies"`
	AvailableCopies int `json:"available_copies" db:"available_copies"`
}

type Publication struct {
	IDPublication   int     `json:"id_publication" db:"id_publication"`
	Title           string  `json:"title" db:"title"`
	YearPublication int     `json:"year_publication" db:"year_publication"`
	PublicationType string  `json:"publication_type" db:"publication_type"`
	Edition         *string `json:"edition" db:"edition"`
	PublisherName   *string `json:"publisher_name" db:"publisher_name"`
	Authors         *string `json:"authors" db:"authors"`
}

type Author struct {
	Name  string  `json:"name" db:"name"`
	Email *string `json:"email" db:"email"`
}

type CopyDetail struct {
	IDCopy        int        `json:"id_copy" db:"id_copy"`
	LabName       string     `json:"lab_name" db:"lab_name"`
	Status        CopyStatus `json:"status" db:"status"`
	PurchasePrice *float64   `json:"purchase_price" db:"purchase_price"`
	Currency      *string    `json:"currency" db:"currency"`
	BookshopName  *string    `json:"bookshop_name" db:"bookshop_name"`
}

// PublicationDetail aggregates the publication row with its subtype
// fields and related entities.
type PublicationDetail struct {
	IDPublication        int          `json:"id_publication" db:"id_publication"`
	Title                string       `json:"title" db:"title"`
	YearPublication      int          `json:"year_publication" db:"year_publication"`
	PublicationType      string       `json:"publication_type" db:"publication_type"`
	Edition              *string      `json:"edition" db:"edition"`
	PublisherName        *string      `json:"publisher_name" db:"publisher_name"`
	ISBN                 *string      `json:"isbn" db:"isbn"`
	VolumeNumber         *int         `json:"volume_number" db:"volume_number"`
	IdentificationNumber *string      `json:"identification_number" db:"identification_number"`
	ReportType           *string      `json:"report_type" db:"report_type"`
	Authors              []Author     `json:"authors" db:"-"`
	Categories           []string     `json:"categories" db:"-"`
	Keywords             []string     `json:"keywords" db:"-"`
	Copies               []CopyDetail `json:"copies" db:"-"`
}

type Borrowing struct {
	IDBorrowing int        `json:"id_borrowing" db:"id_borrowing"`
	BorrowDate  time.Time  `json:"borrow_date" db:"borrow_date"`
	DueDate     time.Time  `json:"due_date" db:"due_date"`
	ReturnDate  *time.Time `json:"return_date" db:"return_date"`
	Email       *string    `json:"email,omitempty" db:"email"`
	UserName    *string    `json:"user_name,omitempty" db:"user_name"`
	Title       string     `json:"title" db:"title"`
	LabName     string     `json:"lab_name" db:"lab_name"`
}

// BorrowingRecord is the raw borrowing row used by the return workflow.
type BorrowingRecord struct {
	IDBorrowing int        `db:"id_borrowing"`
	IDCopy      int        `db:"id_copy"`
	Email       string     `db:"email"`
	BorrowDate  time.Time  `db:"borrow_date"`
	DueDate     time.Time  `db:"due_date"`
	ReturnDate  *time.Time `db:"return_date"`
}

type CreateBorrowingRequest struct {
	PublicationID int `json:"publication_id" validate:"required,gt=0"`
	LabID         int `json:"lab_id" validate:"required,gt=0"`
}

type CreateBorrowingResponse struct {
	Message     string `json:"message"`
	BorrowingID int    `json:"borrowing_id"`
	DueDate     string `json:"due_date"`
}

type CanBorrow struct {
	CanBorrow bool   `json:"can_borrow" db:"can_borrow"`
	Reason    string `json:"reason" db:"reason"`
}

type CanBorrowRequest struct {
	PublicationID int    `json:"publication_id" validate:"required,gt=0"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type Proposal struct {
	IDProposal      int             `json:"id_proposal" db:"id_proposal"`
	Email           string          `json:"email" db:"email"`
	Title           string          `json:"title" db:"title"`
	PublicationType string          `json:"publication_type" db:"publication_type"`
	Details         json.RawMessage `json:"details" db:"details"`
	Status          ProposalStatus  `json:"status" db:"status"`
	DateProposal    time.Time       `json:"date_proposal" db:"date_proposal"`
	ReviewedBy      *string         `json:"reviewed_by" db:"reviewed_by"`
	ReviewedAt      *time.Time      `json:"reviewed_at" db:"reviewed_at"`
	SubmittedByName *string         `json:"submitted_by_name" db:"submitted_by_name"`
}

type CreateProposalRequest struct {
	Title           string   `json:"title" validate:"required"`
	Authors         string   `json:"authors" validate:"required"`
	PublicationType string   `json:"publication_type" validate:"required"`
	Publisher       *string  `json:"publisher"`
	Year            int      `json:"year" validate:"required"`
	EstimatedPrice  *float64 `json:"estimated_price"`
	Currency        string   `json:"currency"`
	Justification   string   `json:"justification" validate:"required"`
}

// ProposalDetails is the JSONB payload stored alongside a proposal.
type ProposalDetails struct {
	Authors        string   `json:"authors"`
	Publisher      *string  `json:"publisher"`
	Year           int      `json:"year"`
	EstimatedPrice *float64 `json:"estimated_price"`
	Currency       string   `json:"currency"`
	Justification  string   `json:"justification"`
}

type UpdateProposalRequest struct {
	Status   ProposalStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Comments *string        `json:"comments"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Statistics struct {
	TotalPublications int `json:"total_publications" db:"total_publications"`
	TotalCopies       int `json:"total_copies" db:"total_copies"`
	AvailableCopies   int `json:"available_copies" db:"available_copies"`
	BorrowedCopies    int `json:"borrowed_copies" db:"borrowed_copies"`
	LostCopies        int `json:"lost_copies" db:"lost_copies"`
	TotalUsers        int `json:"total_users" db:"total_users"`
	ActiveBorrowings  int `json:"active_borrowings" db:"active_borrowings"`
	TotalLabs         int `json:"total_labs" db:"total_labs"`
	PendingProposals  int `json:"pending_proposals" db:"pending_proposals"`
}

type LabValue struct {
	IDLab          int     `json:"id_lab" db:"id_lab"`
	Name           string  `json:"name" db:"name"`
	TotalValueEuro float64 `json:"total_value_euro" db:"total_value_euro"`
}

type UserBorrowedPublication struct {
	Title      string     `json:"title" db:"title"`
	LabName    string     `json:"lab_name" db:"lab_name"`
	BorrowDate time.Time  `json:"borrow_date" db:"borrow_date"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	ReturnDate *time.Time `json:"return_date" db:"return_date"`
}

type UniquePublication struct {
	IDPublication   int     `json:"id_publication" db:"id_publication"`
	Title           string  `json:"title" db:"title"`
	YearPublication int     `json:"year_publication" db:"year_publication"`
	PublicationType string  `json:"publication_type" db:"publication_type"`
	Authors         *string `json:"authors" db:"authors"`
	TotalCopies     int     `json:"total_copies" db:"total_copies"`
}

type LostBook struct {
	IDCopy        int      `json:"id_copy" db:"id_copy"`
	Title         string   `json:"title" db:"title"`
	LabName       string   `json:"lab_name" db:"lab_name"`
	PurchasePrice *float64 `json:"purchase_price" db:"purchase_price"`
	Currency      *string  `json:"currency" db:"currency"`
}

type OverdueBorrowing struct {
	IDBorrowing int       `json:"id_borrowing" db:"id_borrowing"`
	Email       string    `json:"email" db:"email"`
	Name        string    `json:"name" db:"name"`
	Title       string    `json:"title" db:"title"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	DaysOverdue int       `json:"days_overdue" db:"days_overdue"`
}
