// File: internal/render/detect.go
package render

import "strings"

var codeIndicators = []string{
	"def ", "class ", "import ", "from ", "if __name__",
	"function", "const ", "let ", "var ", "public class",
	"package ", "#include", "<?php", "<!doctype", "<html>",
	"select ", "insert ", "update ", "create table",
	"```", "print(", "console.log", "system.out.println",
}

// languageRules are checked in order; the first language with a matching
// indicator wins. SQL and Java come first because their markers are the most
// distinctive and Java sources also trip the Python markers.
var languageRules = []struct {
	language   string
	indicators []string
}{
	{"sql", []string{"select ", "insert ", "update ", "create table", "where ", "join ", " from ", "delete "}},
	{"java", []string{"public class", "system.out.println", "import java", "private ", "protected "}},
	{"python", []string{"def ", "import ", "from ", "class ", "if __name__", "print(", "elif ", "self."}},
	{"javascript", []string{"function", "const ", "let ", "var ", "console.log", "=>", "document.", "window."}},
	{"html", []string{"<!doctype", "<html>", "<div>", "<script>", "</", "<body>"}},
	{"cpp", []string{"#include", "int main", "printf(", "std::cout"}},
}

// ContainsCode reports whether content looks like it contains source code.
func ContainsCode(content string) bool {
	return containsAny(strings.ToLower(content), codeIndicators)
}

// DetectLanguage guesses the language of content for syntax highlighting,
// defaulting to python.
func DetectLanguage(content string) string {
	lower := strings.ToLower(content)
	for _, rule := range languageRules {
		if containsAny(lower, rule.indicators) {
			return rule.language
		}
	}
	return "python"
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
