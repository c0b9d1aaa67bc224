package models

// SeedRecords returns the starter project used when no saved collection
// exists yet.
func SeedRecords() []FileRecord {
	return []FileRecord{
		{
			ID:       "index.html",
			Name:     "index.html",
			Language: LangHTML,
			Content: `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Preview</title>
  </head>
  <body>
    <h1>Hello from MiniIDE</h1>
  </body>
</html>`,
		},
		{
			ID:       "script.js",
			Name:     "script.js",
			Language: LangJavaScript,
			Content:  `console.log('hello world')`,
		},
		{
			ID:       "styles.css",
			Name:     "styles.css",
			Language: LangCSS,
			Content:  `body{font-family:sans-serif}`,
		},
		{
			ID:       "src/main.py",
			Name:     "src/main.py",
			Language: LangPython,
			Content:  `print("Python in folder works!")`,
		},
		{
			ID:       "src/Hello.java",
			Name:     "src/Hello.java",
			Language: LangJava,
			Content: `public class Hello {
  public static void main(String[] args) {
    System.out.println("Java requires a server to run.");
  }
}`,
		},
		{
			ID:       "src/main.cpp",
			Name:     "src/main.cpp",
			Language: LangCPP,
			Content: `#include <iostream>
int main() {
    std::cout << "C++ needs a server/wasm to compile.";
    return 0;
}`,
		},
	}
}
