package ceangal

import (
	"testing"
)

func benchmarkContainer(b *testing.B) *Container {
	b.Helper()
	container := New()
	if err := container.Bind((*Logger)(nil)).To((*ConsoleLogger)(nil)).AsSingleton(); err != nil {
		b.Fatal(err)
	}
	if err := container.Bind((*Repo)(nil)).To((*SqlRepo)(nil)).AsTransient(); err != nil {
		b.Fatal(err)
	}
	if err := container.Bind((*Service)(nil)).To((*ServiceImpl)(nil), NewServiceImpl).AsTransient(); err != nil {
		b.Fatal(err)
	}
	return container
}

func BenchmarkResolve_Singleton(b *testing.B) {
	container := benchmarkContainer(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := container.Resolve((*Logger)(nil)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_Transient(b *testing.B) {
	container := benchmarkContainer(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := container.Resolve((*Repo)(nil)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_ConstructorGraph(b *testing.B) {
	container := benchmarkContainer(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := container.Resolve((*Service)(nil)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScope_Resolve_Scoped(b *testing.B) {
	container := New()
	if err := container.Bind((*Repo)(nil)).To((*SqlRepo)(nil)).AsScoped(); err != nil {
		b.Fatal(err)
	}
	scope := container.CreateScope()
	defer scope.Dispose()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scope.Resolve((*Repo)(nil)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_Parallel(b *testing.B) {
	container := benchmarkContainer(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := container.Resolve((*Logger)(nil)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
