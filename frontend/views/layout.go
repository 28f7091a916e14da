package views

const pageStyles = `<style>
body { font-family: system-ui, sans-serif; margin: 0; color: #111; }
header { display: flex; align-items: center; justify-content: space-between; padding: 1rem 2rem; border-bottom: 1px solid #e5e5e5; }
header nav a { margin-right: 1rem; color: inherit; }
main { padding: 1.5rem 2rem; }
button { cursor: pointer; border-radius: 6px; padding: 0.5rem 1rem; font-size: 0.875rem; border: 1px solid transparent; }
button:disabled { opacity: 0.5; pointer-events: none; }
.default-button { background: #fff; border-color: #d4d4d4; color: #111; }
.buy-button { background: #16a34a; color: #fff; }
.log-in-button { background: transparent; border-color: #111; color: #111; }
.sign-up-button { background: #111; color: #fff; }
.badge { display: inline-block; border-radius: 999px; padding: 0.1rem 0.6rem; font-size: 0.75rem; font-family: monospace; }
.badge-neutral { background: #e5e5e5; }
.badge-creating { background: #fb923c; color: #fff; }
.badge-ready { background: #16a34a; color: #fff; }
.badge-hidden { background: #737373; color: #fff; }
.badge-success { background: #16a34a; color: #fff; }
.badge-warning { background: #fb923c; color: #fff; }
.badge-error { background: #ef4444; color: #fff; }
.course-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1rem; }
.course-card { border: 1px solid #e5e5e5; border-radius: 8px; padding: 1rem; }
.filter-form { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1.5rem; }
.error { color: #b91c1c; }
table { border-collapse: collapse; width: 100%; }
td, th { text-align: left; padding: 0.25rem 0.5rem; border-bottom: 1px solid #f0f0f0; }
</style>`
