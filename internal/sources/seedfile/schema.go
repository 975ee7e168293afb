package seedfile

// CategoryEntry is a category definition in the seed YAML.
type CategoryEntry struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// ItemEntry is a bookmark definition in the seed YAML.
type ItemEntry struct {
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
}

// Config is the root structure of a seed file:
//
//	categories:
//	  - name: Work
//	    icon: "💼"
//	items:
//	  - title: Example
//	    url: https://example.com
//	    category: Work
type Config struct {
	Categories []CategoryEntry `yaml:"categories"`
	Items      []ItemEntry     `yaml:"items"`
}
