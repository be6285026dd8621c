// internal/domain/models/submission.go
package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// GeneralInquiryID is the programme id the contact forms send instead of a
// real slug. Submissions carrying it (or no programme id at all) are stored
// as inquiries rather than quotes.
const GeneralInquiryID = "GENERAL_INQUIRY"

// Collection names under the tenant path.
const (
	CollectionQuotes    = "quotes"
	CollectionInquiries = "inquiries"
)

// Record type discriminators stored in the "type" field.
const (
	RecordTypeQuote   = "EasyQuote"
	RecordTypeInquiry = "GeneralInquiry"
)

// QuoteRecord is the stored form of an EasyQuote request. PerLearner and
// Total are always computed server-side from the catalogue.
type QuoteRecord struct {
	Type          string    `json:"type" bson:"type" firestore:"type"`
	Company       string    `json:"company" bson:"company" firestore:"company"`
	FullName      string    `json:"fullName" bson:"fullName" firestore:"fullName"`
	Position      string    `json:"position" bson:"position" firestore:"position"`
	Email         string    `json:"email" bson:"email" firestore:"email"`
	ContactNumber string    `json:"contactNumber" bson:"contactNumber" firestore:"contactNumber"`
	ProgramID     string    `json:"programId" bson:"programId" firestore:"programId"`
	ProgramName   string    `json:"programName" bson:"programName" firestore:"programName"`
	Learners      int       `json:"learners" bson:"learners" firestore:"learners"`
	PerLearner    int64     `json:"perLearner" bson:"perLearner" firestore:"perLearner"`
	Total         int64     `json:"total" bson:"total" firestore:"total"`
	DeliveryMode  string    `json:"deliveryMode" bson:"deliveryMode" firestore:"deliveryMode"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
}

// InquiryRecord is the stored form of a general website inquiry.
type InquiryRecord struct {
	Type      string    `json:"type" bson:"type" firestore:"type"`
	FullName  string    `json:"fullName" bson:"fullName" firestore:"fullName"`
	Email     string    `json:"email" bson:"email" firestore:"email"`
	Message   string    `json:"message" bson:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
}

// Attachment is a file uploaded with a learnership application. Data holds
// the base64 (standard encoding) file content without a data: URL prefix.
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Data     string `json:"data"`
}

// Application is a learnership application. Applications are never stored;
// they are forwarded by email only.
type Application struct {
	FullName             string       `json:"fullName"`
	IDNumber             string       `json:"idNumber"`
	DOB                  string       `json:"dob"`
	ContactNumber        string       `json:"contactNumber"`
	Email                string       `json:"email"`
	Address              string       `json:"address"`
	HighestQualification string       `json:"highestQualification"`
	EmployerDetails      string       `json:"employerDetails"`
	Employed             string       `json:"employed"`
	Disability           string       `json:"disability"`
	DisabilityType       string       `json:"disabilityType"`
	NumApplying          FlexString   `json:"numApplying"`
	Comments             string       `json:"comments"`
	ProgrammeID          string       `json:"programmeId"`
	Attachments          []Attachment `json:"attachments"`
}

// FlexString decodes from either a JSON string or a JSON number. The apply
// form sends numApplying as a number while older clients send a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
