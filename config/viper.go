package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyOperatorShowCurrentTime = "operator.show_current_time"
	keyOperatorShowEndTime     = "operator.show_end_time"
	keyOperatorShowVariance    = "operator.show_variance"
	keyOperatorShowSectionList = "operator.show_section_list"
	keyOperatorWarning         = "operator.alert_thresholds.warning"
	keyOperatorCritical        = "operator.alert_thresholds.critical"
	keyOperatorColorNormal     = "operator.colors.normal"
	keyOperatorColorWarning    = "operator.colors.warning"
	keyOperatorColorCritical   = "operator.colors.critical"
	keyOperatorColorOvertime   = "operator.colors.overtime"
	keySpeakerShowCurrentTime  = "speaker.show_current_time"
	keySpeakerShowEndTime      = "speaker.show_end_time"
	keySpeakerShowVariance     = "speaker.show_variance"
	keySpeakerShowSectionList  = "speaker.show_section_list"
	keySpeakerWarning          = "speaker.alert_thresholds.warning"
	keySpeakerCritical         = "speaker.alert_thresholds.critical"
	keySpeakerColorNormal      = "speaker.colors.normal"
	keySpeakerColorWarning     = "speaker.colors.warning"
	keySpeakerColorCritical    = "speaker.colors.critical"
	keySpeakerColorOvertime    = "speaker.colors.overtime"
	keyNotificationsEnabled    = "notifications.enabled"
	keyNotificationsChime      = "notifications.chime"
	keyTwentyFourHour          = "settings.24hr_clock"
	keyDarkTheme               = "settings.dark_theme"
	keySectionCmd              = "settings.section_cmd"
	keyDefaultTemplate         = "settings.default_template"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// config file, writing one with default values if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Fmt()
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Fmt()
		}

		return v.Unmarshal(c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyOperatorShowCurrentTime, true)
	v.SetDefault(keyOperatorShowEndTime, true)
	v.SetDefault(keyOperatorShowVariance, true)
	v.SetDefault(keyOperatorShowSectionList, true)
	v.SetDefault(keyOperatorWarning, 60)
	v.SetDefault(keyOperatorCritical, 30)
	v.SetDefault(keyOperatorColorNormal, "#228be6")
	v.SetDefault(keyOperatorColorWarning, "#fd7e14")
	v.SetDefault(keyOperatorColorCritical, "#fa5252")
	v.SetDefault(keyOperatorColorOvertime, "#e03131")
	v.SetDefault(keySpeakerShowCurrentTime, true)
	v.SetDefault(keySpeakerShowEndTime, true)
	v.SetDefault(keySpeakerShowVariance, true)
	v.SetDefault(keySpeakerShowSectionList, false)
	v.SetDefault(keySpeakerWarning, 60)
	v.SetDefault(keySpeakerCritical, 30)
	v.SetDefault(keySpeakerColorNormal, "#228be6")
	v.SetDefault(keySpeakerColorWarning, "#fd7e14")
	v.SetDefault(keySpeakerColorCritical, "#fa5252")
	v.SetDefault(keySpeakerColorOvertime, "#e03131")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsChime, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keySectionCmd, "")
	v.SetDefault(keyDefaultTemplate, "")
}
