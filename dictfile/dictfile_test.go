package dictfile

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/wenzhuo/jiebago/hmm"
)

func drain(t *testing.T, r *Reader) ([]string, []float64) {
	t.Helper()
	var words []string
	var freqs []float64
	for {
		word, freq, err := r.Next()
		if err == io.EOF {
			return words, freqs
		}
		if err != nil {
			t.Fatal(err)
		}
		words = append(words, word)
		freqs = append(freqs, freq)
	}
}

func TestMainDictLines(t *testing.T) {
	src := "北京大学\t2053\tnt\n" +
		"来到 500 v\n" +
		"只有一个字段\n" + // skipped: fewer than two fields
		"\n" +
		"坏词 notanumber x\n" + // skipped: bad frequency
		"AT&T\t3\tv\n"
	words, freqs := drain(t, NewReader(strings.NewReader(src)))
	wantWords := []string{"北京大学", "来到", "AT&T"}
	wantFreqs := []float64{2053, 500, 3}
	if !reflect.DeepEqual(words, wantWords) {
		t.Fatalf("words = %v, want %v", words, wantWords)
	}
	if !reflect.DeepEqual(freqs, wantFreqs) {
		t.Fatalf("freqs = %v, want %v", freqs, wantFreqs)
	}
}

func TestUserDictDefaultFreq(t *testing.T) {
	src := "云计算 30\n" +
		"无频词\n" + // no frequency: defaults
		"带标注 7 n\n" // three fields: frequency parsed, tag ignored
	words, freqs := drain(t, NewUserReader(strings.NewReader(src)))
	wantWords := []string{"云计算", "无频词", "带标注"}
	wantFreqs := []float64{30, 3, 7}
	if !reflect.DeepEqual(words, wantWords) {
		t.Fatalf("words = %v, want %v", words, wantWords)
	}
	if !reflect.DeepEqual(freqs, wantFreqs) {
		t.Fatalf("freqs = %v, want %v", freqs, wantFreqs)
	}
}

func TestEmissionGroups(t *testing.T) {
	src := "B\n" +
		"中\t-5.25\n" +
		"国\t-6.5\n" +
		"E\n" +
		"国\t-4.0\n" +
		"X\n" + // unknown marker: skipped, previous group continues
		"学\t-3.5\n" +
		"坏\tnotanumber\n" // skipped
	r := NewEmissionReader(strings.NewReader(src))
	type entry struct {
		state hmm.State
		char  rune
		logP  float64
	}
	var got []entry
	for {
		state, char, logP, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, entry{state, char, logP})
	}
	want := []entry{
		{hmm.B, '中', -5.25},
		{hmm.B, '国', -6.5},
		{hmm.E, '国', -4.0},
		{hmm.E, '学', -3.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestLoadBuildsSegmenter(t *testing.T) {
	dict := "北京 100\n大学 200\n北京大学 500\n"
	emit := "B\n甲\t-1.0\nE\n乙\t-1.0\n"
	seg, err := Load(strings.NewReader(dict), strings.NewReader(emit))
	if err != nil {
		t.Fatal(err)
	}
	got := seg.SentenceProcess("北京大学")
	want := []string{"北京大学"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// the loaded emissions drive the OOV path
	got = seg.SentenceProcess("甲乙")
	if !reflect.DeepEqual(got, []string{"甲乙"}) {
		t.Fatalf("OOV pair: got %v, want [甲乙]", got)
	}
}

func TestInitUserDictDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.dict"), []byte("云计算 30\n时代 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("忽略 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	seg, err := Load(strings.NewReader("北京 100\n计算 50\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := InitUserDict(seg, dir); err != nil {
		t.Fatal(err)
	}
	got := seg.SentenceProcess("云计算时代")
	want := []string{"云计算", "时代"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if ws := seg.SentenceProcess("忽略"); reflect.DeepEqual(ws, []string{"忽略"}) {
		t.Fatalf("non-.dict file must not be loaded")
	}
}

func TestInitUserDictMissingPath(t *testing.T) {
	seg, err := Load(strings.NewReader("北京 100\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := InitUserDict(seg, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for a missing path")
	}
}
