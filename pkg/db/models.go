package db

// Sampler is a member of the sampling personnel roster
type Sampler struct {
	ID                   string
	Name                 string
	Email                string
	Phone                string
	Has24HourRestriction bool
	RestrictedDays       []int // 0 = Sunday ... 6 = Saturday
	IsActive             bool
}

// LoadingJob is a terminal loading assignment that commits a sampler's time
type LoadingJob struct {
	ID      string
	Who     string
	StartAt string // RFC 3339
	EndAt   string // RFC 3339
}

// OtherJob is a miscellaneous assignment outside loading and line sampling
type OtherJob struct {
	ID          string
	Who         string
	Description string
	StartAt     string // RFC 3339
	EndAt       string // RFC 3339
}

// OfficeSamplingRecord is one office sampling stint on a roster
type OfficeSamplingRecord struct {
	Who            string
	StartOffice    string // RFC 3339
	FinishSampling string // RFC 3339
	Hours          float64
}

// LineSamplingRecord is one line sampling shift on a roster. Who is empty
// until a sampler is assigned.
type LineSamplingRecord struct {
	Who                string
	StartLineSampling  string // RFC 3339
	FinishLineSampling string // RFC 3339
	Hours              float64
}

// SamplingRoster is the coverage plan for one vessel discharge
type SamplingRoster struct {
	ID                   string
	Ref                  string
	Vessel               string
	Berth                string
	StartDischarge       string // RFC 3339
	DischargeTimeHours   float64
	ETC                  string // RFC 3339, may be empty
	RequiresLineSampling bool
	Status               string
	OfficeSampling       []OfficeSamplingRecord
	LineSampling         []LineSamplingRecord
}
