package languages

// File is the top-level structure of the optional languages YAML file.
//
//	languages:
//	  fr:
//	    pageUrl: https://www.sgg.gov.ma/BulletinOfficiel.aspx
//	    fallbackModuleId: "2873"
//	    fallbackTabId: "775"
type File struct {
	Languages map[string]Entry `yaml:"languages"`
}

// Entry overrides settings for one edition. Empty fields keep the built-in
// default.
type Entry struct {
	PageURL          string `yaml:"pageUrl"`
	FallbackModuleID string `yaml:"fallbackModuleId"`
	FallbackTabID    string `yaml:"fallbackTabId"`
}
