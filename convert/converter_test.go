package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/retrojanet/janet"
	"github.com/dhamidi/retrojanet/java"
)

const authService = `package com.example.api;

import com.example.model.LoginResult;
import java.util.Map;
import retrofit2.Call;
import retrofit2.http.Field;
import retrofit2.http.FormUrlEncoded;
import retrofit2.http.GET;
import retrofit2.http.POST;
import retrofit2.http.QueryMap;

public interface AuthService {
    @POST("/login")
    @FormUrlEncoded
    LoginResult login(@Field("user") String u, @Field("pass") String p);

    @GET("/ping")
    void ping();

    @GET("/search")
    Call<Void> search(@QueryMap Map<String, String> options);

    LoginResult cached();
}
`

func writeSource(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestConvertFile(t *testing.T) {
	src := writeSource(t, t.TempDir(), "AuthService.java", authService)
	out := filepath.Join(t.TempDir(), "generated", "actions")

	var saved []string
	conv := New(WithOutputDir(out), WithSavedHook(func(path string) {
		saved = append(saved, path)
	}))

	written, err := conv.ConvertFile(src)
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}

	want := []string{
		filepath.Join(out, "LoginAction.java"),
		filepath.Join(out, "PingAction.java"),
		filepath.Join(out, "SearchAction.java"),
	}
	if len(written) != len(want) {
		t.Fatalf("Expected %v, got %v", want, written)
	}
	for i := range want {
		if written[i] != want[i] || saved[i] != want[i] {
			t.Errorf("file %d: expected %s, got written %s / saved %s", i, want[i], written[i], saved[i])
		}
	}

	if _, err := os.Stat(filepath.Join(out, "CachedAction.java")); !os.IsNotExist(err) {
		t.Errorf("Expected no file for a method without verb, stat err = %v", err)
	}

	t.Run("login", func(t *testing.T) {
		text := readFile(t, want[0])
		for _, fragment := range []string{
			"package com.example.api;\n",
			"import com.example.model.LoginResult;\n",
			`@HttpAction(value = "/login", type = HttpAction.Type.FORM_URL_ENCODED, method = HttpAction.Method.POST)`,
			"public class LoginAction {",
			"    @Field(\"user\")\n    String u;\n",
			"    @Field(\"pass\")\n    String p;\n",
			"    @Response\n    LoginResult response;\n",
			"    public LoginAction(String u, String p) {\n",
			"    public LoginResult getResponse() {\n",
		} {
			if !strings.Contains(text, fragment) {
				t.Errorf("Expected output to contain %q\n%s", fragment, text)
			}
		}
		if strings.Index(text, "String u;") > strings.Index(text, "String p;") {
			t.Error("Expected fields in parameter order")
		}
		if strings.Contains(text, "retrofit") {
			t.Errorf("Retrofit imports must not be carried over\n%s", text)
		}
		if n := strings.Count(text, "import io.techery.janet.http.annotations.Field;"); n != 1 {
			t.Errorf("Expected Field import once, got %d", n)
		}
	})

	t.Run("ping", func(t *testing.T) {
		text := readFile(t, want[1])
		if !strings.Contains(text, "@HttpAction(\"/ping\")\npublic class PingAction {") {
			t.Errorf("Expected compact annotation\n%s", text)
		}
		if !strings.Contains(text, "public PingAction() {\n    }") {
			t.Errorf("Expected no-argument constructor\n%s", text)
		}
		if strings.Contains(text, "response") || strings.Contains(text, "getResponse") {
			t.Errorf("Expected no response field or accessor\n%s", text)
		}
	})

	t.Run("search", func(t *testing.T) {
		text := readFile(t, want[2])
		if !strings.Contains(text, "    @QueryMap!!!//TODO\n    Map<String, String> options;\n") {
			t.Errorf("Expected placeholder annotation\n%s", text)
		}
		if strings.Contains(text, "getResponse") {
			t.Errorf("Call<Void> has no response\n%s", text)
		}
	})
}

func TestConvertFileOverwrites(t *testing.T) {
	src := writeSource(t, t.TempDir(), "AuthService.java", authService)
	out := t.TempDir()
	stale := filepath.Join(out, "PingAction.java")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := New(WithOutputDir(out)).ConvertFile(src)
	if err != nil {
		t.Fatal(err)
	}
	contents := make([]string, len(first))
	for i, path := range first {
		contents[i] = readFile(t, path)
	}
	if contents[1] == "stale" {
		t.Fatal("Expected existing file to be overwritten")
	}

	second, err := New(WithOutputDir(out)).ConvertFile(src)
	if err != nil {
		t.Fatal(err)
	}
	for i, path := range second {
		if got := readFile(t, path); got != contents[i] {
			t.Errorf("Expected identical output on rerun for %s", path)
		}
	}
}

func TestConvertFileErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		if _, err := New(WithOutputDir(t.TempDir())).ConvertFile(filepath.Join(t.TempDir(), "nope.java")); err == nil {
			t.Error("Expected error")
		}
	})

	t.Run("unparsable source", func(t *testing.T) {
		src := writeSource(t, t.TempDir(), "Bad.java", "public interface Bad { @GET(\"/x\") void x(; }")
		_, err := New(WithOutputDir(t.TempDir())).ConvertFile(src)
		var syntaxErr *java.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("Expected *java.SyntaxError, got %v", err)
		}
	})

	t.Run("output directory cannot be created", func(t *testing.T) {
		src := writeSource(t, t.TempDir(), "AuthService.java", authService)
		blocker := writeSource(t, t.TempDir(), "file", "not a directory")
		if _, err := New(WithOutputDir(filepath.Join(blocker, "out"))).ConvertFile(src); err == nil {
			t.Error("Expected error when output directory is below a file")
		}
	})
}

type recordingEmitter struct {
	decls []*janet.Declaration
	fail  error
}

func (e *recordingEmitter) Emit(decl *janet.Declaration) (string, error) {
	if e.fail != nil {
		return "", e.fail
	}
	e.decls = append(e.decls, decl)
	return decl.FileName(), nil
}

func TestConvertPackageOverride(t *testing.T) {
	unit, err := java.CompilationUnitFromSource([]byte(authService))
	if err != nil {
		t.Fatal(err)
	}

	emitter := &recordingEmitter{}
	if _, err := New(WithEmitter(emitter), WithPackage("com.example.actions")).Convert(unit); err != nil {
		t.Fatal(err)
	}
	if len(emitter.decls) != 3 {
		t.Fatalf("Expected 3 declarations, got %d", len(emitter.decls))
	}
	for _, d := range emitter.decls {
		if d.Package != "com.example.actions" {
			t.Errorf("%s: expected overridden package, got %s", d.Name, d.Package)
		}
	}

	plan := New().Plan(unit)
	if len(plan) != 3 || plan[0].Package != "com.example.api" {
		t.Errorf("Expected plan with the source package, got %d declarations", len(plan))
	}
}

func TestConvertStopsOnEmitError(t *testing.T) {
	unit, err := java.CompilationUnitFromSource([]byte(authService))
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("disk full")
	written, err := New(WithEmitter(&recordingEmitter{fail: boom})).Convert(unit)
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped emit error, got %v", err)
	}
	if len(written) != 0 {
		t.Errorf("Expected nothing written, got %v", written)
	}
}

func TestSourceImports(t *testing.T) {
	got := SourceImports([]java.ImportModel{
		{Name: "retrofit2.Call"},
		{Name: "com.example.User"},
		{Name: "retrofit.mime", IsWildcard: true},
		{Name: "java.util.List"},
	})
	if len(got) != 2 || got[0].Name != "com.example.User" || got[1].Name != "java.util.List" {
		t.Errorf("Unexpected imports %v", got)
	}
}
